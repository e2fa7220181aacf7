package eosconv

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Info holds the descriptive fields that travel with an EOS table. Pointer
// fields are nil when the source did not carry them.
type Info struct {
	EOSNumber           *int
	AverageAtomicNumber *float64 // ZBAR
	AverageAtomicMass   *float64 // ABAR
	AmbientDensity      *float64 // DEN, g/cm^3
	DateCreated         string
	Notes               string
}

// Int returns a pointer to n, for populating Info literals.
func Int(n int) *int { return &n }

// Float returns a pointer to v, for populating Info literals.
func Float(v float64) *float64 { return &v }

func (i Info) clone() Info {
	out := i
	if i.EOSNumber != nil {
		out.EOSNumber = Int(*i.EOSNumber)
	}
	if i.AverageAtomicNumber != nil {
		out.AverageAtomicNumber = Float(*i.AverageAtomicNumber)
	}
	if i.AverageAtomicMass != nil {
		out.AverageAtomicMass = Float(*i.AverageAtomicMass)
	}
	if i.AmbientDensity != nil {
		out.AmbientDensity = Float(*i.AmbientDensity)
	}
	return out
}

// Record is the plain intermediate form decoders fill in before a Table is
// built. Pressure and Energy are row-major NT x NR: the value for
// temperature i and density j sits at index i*NR+j.
type Record struct {
	MaterialName string
	Info         Info
	Temperatures []float64 // K
	Densities    []float64 // g/cm^3
	Pressure     []float64 // GPa
	Energy       []float64 // erg/g
}

// Table is an immutable EOS table in display units. Rows are temperatures,
// columns are densities.
type Table struct {
	name         string
	info         Info
	temperatures []float64
	densities    []float64
	pressure     *mat.Dense
	energy       *mat.Dense
}

// NewTable validates r and builds a Table from copies of its slices.
func NewTable(r Record) (*Table, error) {
	nt, nr := len(r.Temperatures), len(r.Densities)
	if nt < 1 || nr < 1 {
		return nil, newError(ErrDimensionMismatch, 0, -1, "need at least one temperature and one density, got NT=%d NR=%d", nt, nr)
	}
	if len(r.Pressure) != nt*nr {
		return nil, newError(ErrDimensionMismatch, 0, -1, "pressure has %d values, want NT*NR=%d", len(r.Pressure), nt*nr)
	}
	if len(r.Energy) != nt*nr {
		return nil, newError(ErrDimensionMismatch, 0, -1, "energy has %d values, want NT*NR=%d", len(r.Energy), nt*nr)
	}
	for i := 1; i < nt; i++ {
		if !(r.Temperatures[i] > r.Temperatures[i-1]) {
			return nil, newError(ErrAxisOrder, 0, -1, "temperature %d (%g) follows %g", i, r.Temperatures[i], r.Temperatures[i-1])
		}
	}

	return &Table{
		name:         r.MaterialName,
		info:         r.Info.clone(),
		temperatures: append([]float64(nil), r.Temperatures...),
		densities:    append([]float64(nil), r.Densities...),
		pressure:     mat.NewDense(nt, nr, append([]float64(nil), r.Pressure...)),
		energy:       mat.NewDense(nt, nr, append([]float64(nil), r.Energy...)),
	}, nil
}

// FromMatrices builds a Table from NT x NR pressure and energy matrices.
func FromMatrices(name string, info Info, temperatures, densities []float64, pressure, energy mat.Matrix) (*Table, error) {
	nt, nr := len(temperatures), len(densities)
	for _, m := range []struct {
		name string
		m    mat.Matrix
	}{{"pressure", pressure}, {"energy", energy}} {
		r, c := m.m.Dims()
		if r != nt || c != nr {
			return nil, newError(ErrDimensionMismatch, 0, -1, "%s is %dx%d, want %dx%d", m.name, r, c, nt, nr)
		}
	}
	return NewTable(Record{
		MaterialName: name,
		Info:         info,
		Temperatures: temperatures,
		Densities:    densities,
		Pressure:     flatten(pressure),
		Energy:       flatten(energy),
	})
}

func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}

func (t *Table) MaterialName() string { return t.name }

// Info returns a copy of the table's descriptive fields.
func (t *Table) Info() Info { return t.info.clone() }

// NT is the number of temperature points.
func (t *Table) NT() int { return len(t.temperatures) }

// NR is the number of density points.
func (t *Table) NR() int { return len(t.densities) }

// Temperatures returns a copy of the temperature axis in Kelvin.
func (t *Table) Temperatures() []float64 { return append([]float64(nil), t.temperatures...) }

// Densities returns a copy of the density axis in g/cm^3.
func (t *Table) Densities() []float64 { return append([]float64(nil), t.densities...) }

// Pressure returns a copy of the NT x NR pressure matrix in GPa.
func (t *Table) Pressure() *mat.Dense { return mat.DenseCopyOf(t.pressure) }

// Energy returns a copy of the NT x NR specific energy matrix in erg/g.
func (t *Table) Energy() *mat.Dense { return mat.DenseCopyOf(t.energy) }

// PressureAt returns the pressure at temperature index i and density index j.
func (t *Table) PressureAt(i, j int) float64 { return t.pressure.At(i, j) }

// EnergyAt returns the specific energy at temperature index i and density index j.
func (t *Table) EnergyAt(i, j int) float64 { return t.energy.At(i, j) }

// TemperatureRange returns the first and last temperature.
func (t *Table) TemperatureRange() (lo, hi float64) {
	return t.temperatures[0], t.temperatures[len(t.temperatures)-1]
}

// DensityRange returns the smallest and largest density.
func (t *Table) DensityRange() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, d := range t.densities {
		lo = math.Min(lo, d)
		hi = math.Max(hi, d)
	}
	return lo, hi
}

// Header is the free-text first line of the fixed-width representation.
// Notes that already start with the material name are used as they are.
func (t *Table) Header(defaultNotes string) string {
	notes := t.info.Notes
	if notes == "" {
		notes = defaultNotes
	}
	if t.name != "" && (notes == t.name || strings.HasPrefix(notes, t.name+" ")) {
		return notes
	}
	return t.name + " " + notes
}

func (t *Table) String() string {
	return fmt.Sprintf("%s: NT=%d NR=%d", t.name, t.NT(), t.NR())
}
