package dataset

import (
	"github.com/mapsbench/mapsload/internal/pkg/utils/errors"
)

// Layout is the directory convention of the dataset tree.
// It changes only how the attack task directory is read, see loadTaskDir.
// The layout is an explicit input, it is never inferred from the base path.
type Layout int

const (
	// LayoutStandard - the attack task directory holds one "all_attack_tools.jsonl" file.
	LayoutStandard Layout = iota
	// LayoutVerified - the attack task directory holds standalone "*.json" documents.
	LayoutVerified
)

func ParseLayout(str string) (Layout, error) {
	switch str {
	case "", "standard":
		return LayoutStandard, nil
	case "verified":
		return LayoutVerified, nil
	default:
		return LayoutStandard, errors.Errorf(`invalid layout "%s", expected "standard" or "verified"`, str)
	}
}

func (l Layout) String() string {
	if l == LayoutVerified {
		return "verified"
	}
	return "standard"
}
