package xlsx

import (
	"io"

	"github.com/unidoc/unioffice/spreadsheet"
)

// WriteWorkbook saves m as an XLSX document to w. Nil cells stay blank.
func WriteWorkbook(w io.Writer, m WorkbookModel) error {
	wb := spreadsheet.New()
	for _, s := range m.Sheets {
		sheet := wb.AddSheet()
		sheet.SetName(s.Name)
		for _, r := range s.Rows {
			row := sheet.AddRow()
			for _, c := range r.Cells {
				cell := row.AddCell()
				switch {
				case c == nil:
				case c.IsNumber:
					cell.SetNumber(c.Number)
				default:
					cell.SetString(c.Value)
				}
			}
		}
	}
	if err := wb.Validate(); err != nil {
		return err
	}
	return wb.Save(w)
}
