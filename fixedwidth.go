package eosconv

import (
	"sort"
	"strconv"
	"strings"

	"github.com/aerissecure/eosconv/units"
)

// Fixed-width layout. The first line is free text whose first word is the
// material name. The second line holds EOS_ID ZBAR ABAR DEN [SIZE]. Every
// following line is concatenated into one stream of 15-character fields:
//
//	NR, NT, NR densities (g/cm^3), NT temperatures (keV),
//	NR*NT pressures (dyne/cm^2), NR*NT energies (erg/g)
//
// Both matrices are stored temperature-major: all densities for the first
// temperature, then all densities for the second, and so on.

// DecodeFixedWidth parses a solver-native EOS file.
func DecodeFixedWidth(data []byte) (*Table, error) {
	rec, err := parseFixedWidth(splitLines(data))
	if err != nil {
		return nil, err
	}
	return NewTable(rec)
}

func parseFixedWidth(lines []string) (Record, error) {
	var rec Record
	if len(lines) < 3 {
		return rec, newError(ErrMalformedFixedWidth, len(lines), -1, "need two header lines and a payload, got %d lines", len(lines))
	}

	name := strings.Fields(lines[0])
	if len(name) == 0 {
		return rec, newError(ErrMalformedFixedWidth, 1, -1, "header line has no material name")
	}
	rec.MaterialName = name[0]
	rec.Info.Notes = lines[0]

	if err := parseInfoLine(lines[1], &rec.Info); err != nil {
		return rec, err
	}

	s := newFieldStream(lines[2:], 3)
	nr, err := s.count(0, "NR")
	if err != nil {
		return rec, err
	}
	nt, err := s.count(1, "NT")
	if err != nil {
		return rec, err
	}
	if need := 2 + nr + nt + 2*nr*nt; s.Len() < need {
		return rec, newError(ErrMalformedFixedWidth, s.lastLine(), s.Len(), "NR=%d NT=%d needs %d fields, payload has %d", nr, nt, need, s.Len())
	}

	next := 2
	read := func(n int, conv func(float64) float64) ([]float64, error) {
		out := make([]float64, n)
		for k := range out {
			v, err := s.Float(next + k)
			if err != nil {
				return nil, err
			}
			out[k] = conv(v)
		}
		next += n
		return out, nil
	}
	identity := func(v float64) float64 { return v }

	if rec.Densities, err = read(nr, identity); err != nil {
		return rec, err
	}
	if rec.Temperatures, err = read(nt, units.KeVToKelvin); err != nil {
		return rec, err
	}
	if rec.Pressure, err = read(nr*nt, units.DyneCm2ToGPa); err != nil {
		return rec, err
	}
	if rec.Energy, err = read(nr*nt, units.SolverToDisplayEnergy); err != nil {
		return rec, err
	}
	return rec, nil
}

func parseInfoLine(line string, info *Info) error {
	tok := strings.Fields(line)
	if len(tok) < 4 {
		return newError(ErrMalformedFixedWidth, 2, -1, "want EOS_ID ZBAR ABAR DEN, got %q", line)
	}
	id, err := strconv.Atoi(tok[0])
	if err != nil {
		return newError(ErrMalformedFixedWidth, 2, -1, "EOS number %q is not an integer", tok[0])
	}
	info.EOSNumber = &id

	dst := []**float64{&info.AverageAtomicNumber, &info.AverageAtomicMass, &info.AmbientDensity}
	for k, p := range dst {
		v, err := strconv.ParseFloat(tok[k+1], 64)
		if err != nil {
			return newError(ErrMalformedFixedWidth, 2, -1, "%q is not a number", tok[k+1])
		}
		*p = &v
	}
	return nil
}

// fieldStream views payload lines as one run of fixed-width fields,
// ignoring where the lines break.
type fieldStream struct {
	data   string
	starts []int // offset in data of each payload line
	first  int   // 1-based file line of the first payload line
}

func newFieldStream(lines []string, first int) *fieldStream {
	var b strings.Builder
	starts := make([]int, len(lines))
	for i, l := range lines {
		starts[i] = b.Len()
		b.WriteString(l)
	}
	return &fieldStream{data: b.String(), starts: starts, first: first}
}

// Len is the number of complete fields.
func (s *fieldStream) Len() int { return len(s.data) / fieldWidth }

func (s *fieldStream) line(field int) int {
	off := field * fieldWidth
	k := sort.Search(len(s.starts), func(k int) bool { return s.starts[k] > off }) - 1
	return s.first + max(k, 0)
}

func (s *fieldStream) lastLine() int { return s.first + len(s.starts) - 1 }

func (s *fieldStream) raw(i int) string { return s.data[i*fieldWidth : (i+1)*fieldWidth] }

func (s *fieldStream) Float(i int) (float64, error) {
	if i >= s.Len() {
		return 0, newError(ErrMalformedFixedWidth, s.lastLine(), i, "payload ends after %d fields", s.Len())
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s.raw(i)), 64)
	if err != nil {
		return 0, newError(ErrMalformedFixedWidth, s.line(i), i, "%q is not a number", s.raw(i))
	}
	return v, nil
}

// count reads a dimension. Counts are written in scientific notation and
// truncated to an integer.
func (s *fieldStream) count(i int, what string) (int, error) {
	v, err := s.Float(i)
	if err != nil {
		return 0, err
	}
	if !(v >= 1) || v > float64(s.Len()) {
		return 0, newError(ErrMalformedFixedWidth, s.line(i), i, "%s=%q out of range", what, s.raw(i))
	}
	return int(v), nil
}
