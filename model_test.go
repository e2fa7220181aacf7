package eosconv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestNewTable(t *testing.T) {
	tbl, err := NewTable(diamondRecord())
	require.NoError(t, err)

	assert.Equal(t, "Diamond", tbl.MaterialName())
	assert.Equal(t, 3, tbl.NT())
	assert.Equal(t, 2, tbl.NR())
	r, c := tbl.Pressure().Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, 2.0, tbl.PressureAt(0, 1))
	assert.Equal(t, 3.0, tbl.PressureAt(1, 0))
	assert.Equal(t, 5e11, tbl.EnergyAt(2, 1))

	lo, hi := tbl.TemperatureRange()
	assert.Equal(t, 11605.0, lo)
	assert.Equal(t, 1160500.0, hi)
	lo, hi = tbl.DensityRange()
	assert.Equal(t, 1.0, lo)
	assert.Equal(t, 2.5, hi)
}

func TestNewTableCopiesInput(t *testing.T) {
	rec := diamondRecord()
	rec.Temperatures = append([]float64(nil), rec.Temperatures...)
	rec.Pressure = append([]float64(nil), rec.Pressure...)
	tbl, err := NewTable(rec)
	require.NoError(t, err)

	rec.Temperatures[0] = -1
	rec.Pressure[0] = -1
	*rec.Info.EOSNumber = 7

	assert.Equal(t, 11605.0, tbl.Temperatures()[0])
	assert.Equal(t, 1.0, tbl.PressureAt(0, 0))
	assert.Equal(t, 341, *tbl.Info().EOSNumber)
}

func TestTableAccessorsReturnCopies(t *testing.T) {
	tbl, err := NewTable(diamondRecord())
	require.NoError(t, err)

	tbl.Temperatures()[0] = 0
	tbl.Densities()[0] = 0
	tbl.Pressure().Set(0, 0, 99)
	tbl.Energy().Set(0, 0, 99)
	info := tbl.Info()
	*info.AmbientDensity = 0
	info.Notes = "changed"

	assert.Equal(t, 11605.0, tbl.Temperatures()[0])
	assert.Equal(t, 1.0, tbl.Densities()[0])
	assert.Equal(t, 1.0, tbl.PressureAt(0, 0))
	assert.Equal(t, -1.5e11, tbl.EnergyAt(0, 0))
	assert.Equal(t, 3.515, *tbl.Info().AmbientDensity)
	assert.Equal(t, "Diamond test table", tbl.Info().Notes)
}

func TestNewTableValidation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Record)
		kind   error
	}{
		{"no temperatures", func(r *Record) { r.Temperatures = nil }, ErrDimensionMismatch},
		{"no densities", func(r *Record) { r.Densities = nil }, ErrDimensionMismatch},
		{"short pressure", func(r *Record) { r.Pressure = r.Pressure[:5] }, ErrDimensionMismatch},
		{"long energy", func(r *Record) { r.Energy = append(append([]float64(nil), r.Energy...), 1) }, ErrDimensionMismatch},
		{"repeated temperature", func(r *Record) { r.Temperatures = []float64{1, 1, 2} }, ErrAxisOrder},
		{"decreasing temperature", func(r *Record) { r.Temperatures = []float64{3, 2, 1} }, ErrAxisOrder},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := diamondRecord()
			tt.modify(&rec)
			tbl, err := NewTable(rec)
			assert.Nil(t, tbl)
			assert.True(t, errors.Is(err, tt.kind), "got %v", err)
		})
	}
}

func TestFromMatrices(t *testing.T) {
	p := mat.NewDense(3, 2, diamondPressure)
	e := mat.NewDense(3, 2, diamondEnergy)
	tbl, err := FromMatrices("Diamond", Info{}, diamondTemperatures, diamondDensities, p, e)
	require.NoError(t, err)
	assert.True(t, mat.Equal(p, tbl.Pressure()))

	_, err = FromMatrices("Diamond", Info{}, diamondTemperatures, diamondDensities, p.T(), e)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestHeader(t *testing.T) {
	tests := []struct {
		name, notes, want string
	}{
		{"Al", "Al from file", "Al from file"},
		{"Al", "hand made", "Al hand made"},
		{"Al", "Aluminum alloy", "Al Aluminum alloy"},
		{"Al", "", "Al EOS Table created on today"},
		{"", "notes only", " notes only"},
	}
	for _, tt := range tests {
		rec := diamondRecord()
		rec.MaterialName = tt.name
		rec.Info.Notes = tt.notes
		tbl, err := NewTable(rec)
		require.NoError(t, err)
		assert.Equal(t, tt.want, tbl.Header("EOS Table created on today"))
	}
}
