package dataset

import (
	"fmt"
)

// Warning is a recovered problem from the load: a skipped directory,
// an unreadable file or a malformed document/line.
type Warning struct {
	Path    string
	Message string
}

func (w Warning) String() string {
	return w.Message
}

// Result is the output of one Load call: the flat ordered sequence of records
// and all warnings collected on the way.
type Result struct {
	Records  []Record
	Warnings []Warning
}

func (r *Result) Len() int {
	return len(r.Records)
}

func (r *Result) warnf(path, format string, a ...any) Warning {
	w := Warning{Path: path, Message: fmt.Sprintf(format, a...)}
	r.Warnings = append(r.Warnings, w)
	return w
}
