package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aerissecure/eosconv"
)

func table(t *testing.T, nt, nr int, info eosconv.Info) *eosconv.Table {
	t.Helper()
	rec := eosconv.Record{
		MaterialName: "Al",
		Info:         info,
		Temperatures: make([]float64, nt),
		Densities:    make([]float64, nr),
		Pressure:     make([]float64, nt*nr),
		Energy:       make([]float64, nt*nr),
	}
	for i := range rec.Temperatures {
		rec.Temperatures[i] = float64(i+1) * 1000
	}
	for j := range rec.Densities {
		rec.Densities[j] = float64(j+1) / 2
	}
	for k := range rec.Pressure {
		rec.Pressure[k] = float64(k)
		rec.Energy[k] = -float64(k)
	}
	tbl, err := eosconv.NewTable(rec)
	require.NoError(t, err)
	return tbl
}

func TestTerminal_Render(t *testing.T) {
	tbl := table(t, 2, 3, eosconv.Info{
		EOSNumber:           eosconv.Int(3717),
		AverageAtomicNumber: eosconv.Float(13),
		AverageAtomicMass:   eosconv.Float(26.98),
		AmbientDensity:      eosconv.Float(2.7),
		DateCreated:         "10/19/2026",
		Notes:               "Al test",
	})

	out := NewTerminal(MonoTheme(), 120).Render(tbl)
	for _, want := range []string{
		"Al\n",
		"EOS number: 3717",
		"ABAR:       26.98",
		"Created:    10/19/2026",
		"2 temperatures, 1000 to 2000 K",
		"3 densities, 0.5 to 1.5 g/cm^3",
		"Pressure (GPa)",
		"Energy (erg/g)",
	} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "showing")

	lines := strings.Split(out, "\n")
	var row string
	for i, l := range lines {
		if strings.HasPrefix(l, "Pressure") {
			row = lines[i+3]
		}
	}
	assert.Equal(t, []string{"2000", "3", "4", "5"}, strings.Fields(row))
}

func TestTerminal_RenderMissingInfo(t *testing.T) {
	out := NewTerminal(MonoTheme(), 0).Render(table(t, 1, 1, eosconv.Info{}))
	assert.Contains(t, out, "ZBAR:       missing")
	assert.NotContains(t, out, "Notes")
}

func TestTerminal_RenderTruncates(t *testing.T) {
	tbl := table(t, 40, 30, eosconv.Info{Notes: strings.Repeat("long note ", 20)})

	out := NewTerminal(MonoTheme(), 60).WithMaxRows(3).Render(tbl)
	assert.Contains(t, out, "(showing 3 of 40 rows, 3 of 30 columns)")
	assert.Contains(t, out, "...")
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(l), 60, l)
	}
}

func TestThemeFor(t *testing.T) {
	assert.Equal(t, "mono", ThemeFor(true).Name)
	assert.Equal(t, "default", ThemeFor(false).Name)
}
