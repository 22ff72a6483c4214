package dataset

import (
	"github.com/mapsbench/mapsload/internal/pkg/utils/orderedmap"
)

// Metadata keys injected into mapping-shaped records.
// If a source field uses the same key, it is overwritten.
const (
	LanguageKey = "_language"
	TaskKey     = "_task"
)

// Record is one loaded data item.
// A mapping-shaped source value is stored in Map with its key order preserved.
// Any other JSON value (array, scalar, null) is carried as-is in Raw,
// such records are never tagged with metadata.
type Record struct {
	Map *orderedmap.OrderedMap
	Raw any
}

func MapRecord(m *orderedmap.OrderedMap) Record {
	return Record{Map: m}
}

func RawRecord(v any) Record {
	return Record{Raw: v}
}

func (r Record) IsMap() bool {
	return r.Map != nil
}
