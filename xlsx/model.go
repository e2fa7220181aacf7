package xlsx

import (
	"fmt"
	"strings"
	"time"
)

// Intermediate representation for XLSX. Only cell content is kept; styling
// is dropped on read and never written.

// Cell is the IR for a single non-empty cell.
type Cell struct {
	Ref      string    // e.g. "B3"
	Value    string    // formatted value as the workbook displays it
	Number   float64   // numeric value when IsNumber
	IsNumber bool
	Time     time.Time // set when a numeric cell is displayed as a date
}

func (c Cell) String() string {
	return fmt.Sprintf("Ref: %s, Value: %s, IsNumber: %t", c.Ref, c.Value, c.IsNumber)
}

// Text returns a string cell.
func Text(s string) *Cell { return &Cell{Value: s} }

// Number returns a numeric cell.
func Number(v float64) *Cell { return &Cell{Number: v, IsNumber: true} }

// Row represents one row of a sheet.
type Row struct {
	Cells []*Cell // may contain nil for blank cells
}

// Cell returns the cell in column col (0-based) or nil.
func (r Row) Cell(col int) *Cell {
	if col < 0 || col >= len(r.Cells) {
		return nil
	}
	return r.Cells[col]
}

// Blank reports whether the row has no content.
func (r Row) Blank() bool {
	for _, c := range r.Cells {
		if c != nil && (c.IsNumber || strings.TrimSpace(c.Value) != "") {
			return false
		}
	}
	return true
}

func (r Row) String() string {
	return fmt.Sprintf("Cells: %d", len(r.Cells))
}

// Sheet is the intermediate representation of a worksheet. Rows[i] is
// spreadsheet row i+1.
type Sheet struct {
	Name string
	Rows []Row
}

func (s Sheet) String() string {
	return fmt.Sprintf("Name: %s, Rows: %d", s.Name, len(s.Rows))
}

// WorkbookModel is the top-level IR containing all sheets.
type WorkbookModel struct {
	Sheets []Sheet
}

// Sheet finds a sheet by name, ignoring case and surrounding space.
func (m WorkbookModel) Sheet(name string) (*Sheet, bool) {
	for i := range m.Sheets {
		if strings.EqualFold(strings.TrimSpace(m.Sheets[i].Name), name) {
			return &m.Sheets[i], true
		}
	}
	return nil, false
}
