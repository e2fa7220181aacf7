package xlsx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkbookRoundTrip(t *testing.T) {
	in := WorkbookModel{Sheets: []Sheet{
		{Name: "Info", Rows: []Row{
			{Cells: []*Cell{Text("Property"), Text("Value")}},
			{Cells: []*Cell{Text("Ambient Density"), Number(2.7)}},
			{Cells: []*Cell{Text("Notes"), nil}},
		}},
		{Name: "Pressure", Rows: []Row{
			{Cells: []*Cell{Text("T/rho"), Number(0.5), Number(1e-12)}},
			{},
			{Cells: []*Cell{Number(300), Number(-4.25), Number(6.02214076e23)}},
		}},
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, in))

	out, err := ParseWorkbookModel(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)
	require.Len(t, out.Sheets, 2)

	info := out.Sheets[0]
	assert.Equal(t, "Info", info.Name)
	require.Len(t, info.Rows, 3)
	assert.Equal(t, "Property", info.Rows[0].Cell(0).Value)
	assert.Equal(t, "A1", info.Rows[0].Cell(0).Ref)
	assert.True(t, info.Rows[1].Cell(1).IsNumber)
	assert.Equal(t, 2.7, info.Rows[1].Cell(1).Number)
	assert.Equal(t, "B2", info.Rows[1].Cell(1).Ref)
	assert.True(t, info.Rows[1].Cell(1).Time.IsZero(), "plain numbers are not dates")
	assert.Nil(t, info.Rows[2].Cell(1))

	p := out.Sheets[1]
	require.Len(t, p.Rows, 3)
	assert.True(t, p.Rows[1].Blank())
	assert.Equal(t, []float64{300, -4.25, 6.02214076e23},
		[]float64{p.Rows[2].Cell(0).Number, p.Rows[2].Cell(1).Number, p.Rows[2].Cell(2).Number})
	assert.Equal(t, 1e-12, p.Rows[0].Cell(2).Number)
}

func TestParseWorkbookModel_NotXLSX(t *testing.T) {
	data := []byte("not a zip archive")
	_, err := ParseWorkbookModel(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}

func TestWorkbookModel_Sheet(t *testing.T) {
	m := WorkbookModel{Sheets: []Sheet{{Name: "Info"}, {Name: " Energy "}}}

	s, ok := m.Sheet("energy")
	require.True(t, ok)
	assert.Equal(t, " Energy ", s.Name)

	s.Rows = append(s.Rows, Row{})
	assert.Len(t, m.Sheets[1].Rows, 1, "Sheet returns a pointer into the model")

	_, ok = m.Sheet("Pressure")
	assert.False(t, ok)
}

func TestRow(t *testing.T) {
	r := Row{Cells: []*Cell{nil, Text("  "), nil}}
	assert.True(t, r.Blank())
	assert.Nil(t, r.Cell(-1))
	assert.Nil(t, r.Cell(5))

	r.Cells[2] = Number(0)
	assert.False(t, r.Blank())
	assert.Equal(t, 0.0, r.Cell(2).Number)
}
