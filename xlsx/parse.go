package xlsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// ParseWorkbookModel reads an XLSX from r/size and returns the intermediate representation.
func ParseWorkbookModel(r io.ReaderAt, size int64) (WorkbookModel, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return WorkbookModel{}, err
	}

	var model WorkbookModel

	for _, sheet := range wb.Sheets() {
		// ---- find max column ----
		maxCols := 0
		for _, row := range sheet.Rows() {
			for _, cell := range row.Cells() {
				colName, err := cell.Column()
				if err != nil {
					continue
				}
				if idx := int(reference.ColumnToIndex(colName)) + 1; idx > maxCols {
					maxCols = idx
				}
			}
		}

		s := Sheet{Name: sheet.Name()}

		// --- build rows ---
		for _, row := range sheet.Rows() {
			rowIdx := int(row.RowNumber()) - 1
			if rowIdx < 0 {
				continue
			}
			if rowIdx >= len(s.Rows) {
				// grow slice to accommodate sparse rows
				newRows := make([]Row, rowIdx-len(s.Rows)+1)
				s.Rows = append(s.Rows, newRows...)
			}

			rr := &s.Rows[rowIdx]
			rr.Cells = make([]*Cell, maxCols)

			for _, cell := range row.Cells() {
				colName, err := cell.Column()
				if err != nil {
					continue
				}
				colIdx := int(reference.ColumnToIndex(colName))
				if colIdx < 0 || colIdx >= maxCols {
					continue
				}
				rc := &Cell{
					Ref:   fmt.Sprintf("%s%d", colName, rowIdx+1),
					Value: cell.GetFormattedValue(),
				}
				if cell.IsNumber() {
					if v, err := cell.GetValueAsNumber(); err == nil {
						rc.Number = v
						rc.IsNumber = true
						// Only cells formatted as dates display something
						// other than a number.
						if _, perr := strconv.ParseFloat(strings.TrimSpace(rc.Value), 64); perr != nil {
							if tm, err := cell.GetValueAsTime(); err == nil {
								rc.Time = tm
							}
						}
					}
				}
				if !rc.IsNumber && rc.Value == "" {
					continue
				}
				rr.Cells[colIdx] = rc
			}
		}

		model.Sheets = append(model.Sheets, s)
	}

	return model, nil
}
