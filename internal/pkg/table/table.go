// Package table converts loaded records to a row/column table:
// columns are the union of keys seen across all records, in first-seen order,
// missing cells hold the Null sentinel.
package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cast"

	"github.com/mapsbench/mapsload/internal/pkg/dataset"
	"github.com/mapsbench/mapsload/internal/pkg/encoding/json"
	"github.com/mapsbench/mapsload/internal/pkg/utils/orderedmap"
)

// ValueColumn holds the content of non-mapping records.
const ValueColumn = "_value"

// maxPreviewCell limits the cell width in the text preview.
const maxPreviewCell = 60

type nullValue struct{}

// Null marks a cell with no value in the source record.
var Null = nullValue{} // nolint: gochecknoglobals

type Table struct {
	columns []string
	rows    [][]any
}

// FromRecords aligns the records on the union of their keys.
func FromRecords(records []dataset.Record) *Table {
	t := &Table{}
	index := make(map[string]int)
	columnIndex := func(name string) int {
		if i, found := index[name]; found {
			return i
		}
		i := len(t.columns)
		t.columns = append(t.columns, name)
		index[name] = i
		return i
	}

	// Collect cells, the column set grows as new keys are seen
	cellsPerRow := make([]map[int]any, 0, len(records))
	for _, record := range records {
		cells := make(map[int]any)
		if record.IsMap() {
			for _, key := range record.Map.Keys() {
				cells[columnIndex(key)] = record.Map.GetOrNil(key)
			}
		} else {
			cells[columnIndex(ValueColumn)] = record.Raw
		}
		cellsPerRow = append(cellsPerRow, cells)
	}

	// Align rows on the final column set
	t.rows = make([][]any, len(cellsPerRow))
	for i, cells := range cellsPerRow {
		row := make([]any, len(t.columns))
		for j := range row {
			row[j] = Null
		}
		for j, value := range cells {
			row[j] = value
		}
		t.rows[i] = row
	}

	return t
}

func (t *Table) Columns() []string {
	return t.columns
}

func (t *Table) Shape() (rows, cols int) {
	return len(t.rows), len(t.columns)
}

// Head returns a table with at most n first rows, the columns are shared.
func (t *Table) Head(n int) *Table {
	if n < 0 || n > len(t.rows) {
		n = len(t.rows)
	}
	return &Table{columns: t.columns, rows: t.rows[:n]}
}

// WriteCSV serializes the table, one row per record, one column per key.
// Composite values are serialized as compact JSON, the Null sentinel as an empty cell.
func (t *Table) WriteCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.columns); err != nil {
		return err
	}

	row := make([]string, len(t.columns))
	for _, cells := range t.rows {
		for i, value := range cells {
			row[i] = formatCell(value)
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// Render writes an aligned text preview with a bold header.
func (t *Table) Render(w io.Writer) {
	widths := make([]int, len(t.columns))
	for i, column := range t.columns {
		widths[i] = len(column)
	}

	cells := make([][]string, len(t.rows))
	for i, row := range t.rows {
		cells[i] = make([]string, len(row))
		for j, value := range row {
			str := previewCell(value)
			cells[i][j] = str
			if len(str) > widths[j] {
				widths[j] = len(str)
			}
		}
	}

	header := make([]string, len(t.columns))
	bold := color.New(color.Bold)
	for i, column := range t.columns {
		header[i] = bold.Sprint(pad(column, widths[i]))
	}
	fmt.Fprintln(w, strings.Join(header, "  "))

	for _, row := range cells {
		for i, str := range row {
			row[i] = pad(str, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(row, "  "), " "))
	}
}

func previewCell(value any) string {
	str := formatCell(value)
	str = strings.ReplaceAll(str, "\n", `\n`)
	if len(str) > maxPreviewCell {
		str = str[:maxPreviewCell-3] + "..."
	}
	return str
}

func formatCell(value any) string {
	switch v := value.(type) {
	case nullValue:
		return ""
	case nil:
		return ""
	case string:
		return v
	case *orderedmap.OrderedMap, []any, map[string]any:
		return json.MustEncodeString(v, false)
	default:
		return cast.ToString(v)
	}
}

func pad(str string, width int) string {
	if len(str) >= width {
		return str
	}
	return str + strings.Repeat(" ", width-len(str))
}
