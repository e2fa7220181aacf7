package eosconv

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/aerissecure/eosconv/xlsx"
)

// Workbook layout. Values are in display units (K, g/cm^3, GPa, erg/g).
const (
	SheetInfo     = "Info"
	SheetPressure = "Pressure"
	SheetEnergy   = "Energy"

	KeyMaterialName        = "Material Name"
	KeyEOSNumber           = "EOS Number"
	KeyAverageAtomicNumber = "Average Atomic Number"
	KeyAverageAtomicMass   = "Average Atomic Mass"
	KeyAmbientDensity      = "Ambient Density"
	KeyDateCreated         = "Date Created"
	KeyNotes               = "Notes"
	KeyAuthor              = "Author"

	axisLabel        = "Temperature (K) / Density (g/cc)"
	infoDateLayout   = "01/02/2006"
	xlsxZipSignature = "PK\x03\x04"
)

// DecodeSpreadsheet reads an Info/Pressure/Energy workbook.
func DecodeSpreadsheet(r io.ReaderAt, size int64) (*Table, error) {
	rec, err := parseSpreadsheet(r, size)
	if err != nil {
		return nil, err
	}
	return NewTable(rec)
}

// DecodeWorkbook builds a Table from an already parsed workbook.
func DecodeWorkbook(m xlsx.WorkbookModel) (*Table, error) {
	rec, err := workbookRecord(m)
	if err != nil {
		return nil, err
	}
	return NewTable(rec)
}

func parseSpreadsheet(r io.ReaderAt, size int64) (Record, error) {
	m, err := xlsx.ParseWorkbookModel(r, size)
	if err != nil {
		return Record{}, newError(ErrMalformedSpreadsheet, 0, -1, "%v", err)
	}
	return workbookRecord(m)
}

func workbookRecord(m xlsx.WorkbookModel) (Record, error) {
	var rec Record
	info, ok := m.Sheet(SheetInfo)
	if !ok {
		return rec, newError(ErrMalformedSpreadsheet, 0, -1, "no %q sheet", SheetInfo)
	}
	name, err := readInfoSheet(info, &rec.Info)
	if err != nil {
		return rec, err
	}
	rec.MaterialName = name

	pTemps, pDens, pressure, err := readMatrixSheet(m, SheetPressure)
	if err != nil {
		return rec, err
	}
	eTemps, eDens, energy, err := readMatrixSheet(m, SheetEnergy)
	if err != nil {
		return rec, err
	}
	if !sameAxis(pTemps, eTemps) || !sameAxis(pDens, eDens) {
		return rec, newError(ErrDimensionMismatch, 0, -1, "%s is %dx%d over different axes than %s (%dx%d)",
			SheetEnergy, len(eTemps), len(eDens), SheetPressure, len(pTemps), len(pDens))
	}

	rec.Temperatures = pTemps
	rec.Densities = pDens
	rec.Pressure = pressure
	rec.Energy = energy
	return rec, nil
}

// readInfoSheet reads the row-labelled Info sheet. The first row is a column
// header. Every key is optional.
func readInfoSheet(s *xlsx.Sheet, info *Info) (string, error) {
	cells := make(map[string]*xlsx.Cell)
	for i, row := range s.Rows {
		if i == 0 {
			continue
		}
		key := row.Cell(0)
		if key == nil {
			continue
		}
		cells[strings.ToLower(strings.TrimSpace(key.Value))] = row.Cell(1)
	}
	lookup := func(key string) *xlsx.Cell { return cells[strings.ToLower(key)] }

	// A blank name is allowed: printed dumps carry none, and Read fills in
	// ReadOptions.MaterialName.
	name := strings.TrimSpace(cellText(lookup(KeyMaterialName)))

	if c := lookup(KeyEOSNumber); c != nil {
		v, err := cellFloat(c)
		if err != nil || v != math.Trunc(v) {
			return "", newError(ErrMalformedSpreadsheet, 0, -1, "%s!%s: %q is not an integer EOS number", SheetInfo, c.Ref, c.Value)
		}
		info.EOSNumber = Int(int(v))
	}
	for _, f := range []struct {
		key string
		dst **float64
	}{
		{KeyAverageAtomicNumber, &info.AverageAtomicNumber},
		{KeyAverageAtomicMass, &info.AverageAtomicMass},
		{KeyAmbientDensity, &info.AmbientDensity},
	} {
		c := lookup(f.key)
		if c == nil {
			continue
		}
		v, err := cellFloat(c)
		if err != nil {
			return "", newError(ErrMalformedSpreadsheet, 0, -1, "%s!%s: %s %q is not a number", SheetInfo, c.Ref, f.key, c.Value)
		}
		*f.dst = &v
	}

	if c := lookup(KeyDateCreated); c != nil {
		if c.IsNumber && !c.Time.IsZero() {
			info.DateCreated = c.Time.Format(infoDateLayout)
		} else {
			info.DateCreated = strings.TrimSpace(c.Value)
		}
	}
	info.Notes = cellText(lookup(KeyNotes))
	if author := strings.TrimSpace(cellText(lookup(KeyAuthor))); author != "" {
		info.Notes = strings.TrimSpace(fmt.Sprintf("Created by %s on %s %s", author, info.DateCreated, info.Notes))
	}
	return name, nil
}

// readMatrixSheet reads a sheet whose first row holds densities from column
// B on and whose later rows hold a temperature in column A followed by one
// value per density.
func readMatrixSheet(m xlsx.WorkbookModel, name string) (temps, dens, values []float64, err error) {
	s, ok := m.Sheet(name)
	if !ok {
		return nil, nil, nil, newError(ErrMalformedSpreadsheet, 0, -1, "no %q sheet", name)
	}
	if len(s.Rows) == 0 {
		return nil, nil, nil, newError(ErrMalformedSpreadsheet, 0, -1, "%s sheet is empty", name)
	}

	header := s.Rows[0].Cells
	last := len(header) - 1
	for last > 0 && header[last] == nil {
		last--
	}
	for col := 1; col <= last; col++ {
		v, err := cellFloat(header[col])
		if err != nil {
			return nil, nil, nil, newError(ErrMalformedSpreadsheet, 1, -1, "%s column %d: density %v", name, col+1, err)
		}
		dens = append(dens, v)
	}

	for i, row := range s.Rows[1:] {
		rowNo := i + 2
		if row.Blank() {
			continue
		}
		t, err := cellFloat(row.Cell(0))
		if err != nil {
			return nil, nil, nil, newError(ErrMalformedSpreadsheet, rowNo, -1, "%s temperature %v", name, err)
		}
		temps = append(temps, t)
		for col := 1; col <= len(dens); col++ {
			v, err := cellFloat(row.Cell(col))
			if err != nil {
				return nil, nil, nil, newError(ErrMalformedSpreadsheet, rowNo, -1, "%s column %d: %v", name, col+1, err)
			}
			values = append(values, v)
		}
		if extra := row.Cell(len(dens) + 1); extra != nil {
			return nil, nil, nil, newError(ErrDimensionMismatch, rowNo, -1, "%s!%s lies beyond the %d density columns", name, extra.Ref, len(dens))
		}
	}
	return temps, dens, values, nil
}

func cellText(c *xlsx.Cell) string {
	if c == nil {
		return ""
	}
	return c.Value
}

func cellFloat(c *xlsx.Cell) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("cell is blank")
	}
	if c.IsNumber {
		return c.Number, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", c.Ref, c.Value)
	}
	return v, nil
}

func sameAxis(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Workbook lays t out as an Info/Pressure/Energy workbook model.
func Workbook(t *Table) xlsx.WorkbookModel {
	info := t.info
	rows := []xlsx.Row{
		{Cells: []*xlsx.Cell{xlsx.Text("Property"), xlsx.Text("Value")}},
		{Cells: []*xlsx.Cell{xlsx.Text(KeyMaterialName), xlsx.Text(t.name)}},
	}
	addNumber := func(key string, v *float64) {
		var c *xlsx.Cell
		if v != nil {
			c = xlsx.Number(*v)
		}
		rows = append(rows, xlsx.Row{Cells: []*xlsx.Cell{xlsx.Text(key), c}})
	}
	if info.EOSNumber != nil {
		addNumber(KeyEOSNumber, Float(float64(*info.EOSNumber)))
	} else {
		addNumber(KeyEOSNumber, nil)
	}
	addNumber(KeyAverageAtomicNumber, info.AverageAtomicNumber)
	addNumber(KeyAverageAtomicMass, info.AverageAtomicMass)
	addNumber(KeyAmbientDensity, info.AmbientDensity)
	rows = append(rows,
		xlsx.Row{Cells: []*xlsx.Cell{xlsx.Text(KeyDateCreated), xlsx.Text(info.DateCreated)}},
		xlsx.Row{Cells: []*xlsx.Cell{xlsx.Text(KeyNotes), xlsx.Text(info.Notes)}},
	)

	return xlsx.WorkbookModel{Sheets: []xlsx.Sheet{
		{Name: SheetInfo, Rows: rows},
		matrixSheet(SheetPressure, t.temperatures, t.densities, t.PressureAt),
		matrixSheet(SheetEnergy, t.temperatures, t.densities, t.EnergyAt),
	}}
}

func matrixSheet(name string, temps, dens []float64, at func(i, j int) float64) xlsx.Sheet {
	s := xlsx.Sheet{Name: name, Rows: make([]xlsx.Row, 0, len(temps)+1)}
	header := []*xlsx.Cell{xlsx.Text(axisLabel)}
	for _, d := range dens {
		header = append(header, xlsx.Number(d))
	}
	s.Rows = append(s.Rows, xlsx.Row{Cells: header})
	for i, t := range temps {
		cells := []*xlsx.Cell{xlsx.Number(t)}
		for j := range dens {
			cells = append(cells, xlsx.Number(at(i, j)))
		}
		s.Rows = append(s.Rows, xlsx.Row{Cells: cells})
	}
	return s
}

// EncodeSpreadsheet renders t as XLSX bytes.
func EncodeSpreadsheet(t *Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := xlsx.WriteWorkbook(&buf, Workbook(t)); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
