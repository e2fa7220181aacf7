package eosconv

import (
	"math"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/aerissecure/eosconv/units"
)

// Printed dump layout, as written by the library manager:
//
//	line 2   banner (PrintedBanner)
//	line 7   "<date> ... EOS <n> ... ZBAR = <f> ABAR = <f> DEN = <f>"
//	...      a "Pressure" or "Energy" line selects the quantity,
//	         a "... T= t1 t2 ..." line announces the block temperatures (keV),
//	         then each row is a density followed by one 11-character value
//	         per block temperature starting at column 15, with no separator.
const (
	PrintedHeaderLine  = 7 // 0-based
	printedValueStart  = 15
	printedValueWidth  = 11
	printedTempsMarker = "T="
)

const floatPattern = `[-+]?(?:\d+\.?\d*|\.\d+)(?:[EeDd][-+]?\d+)?`

var (
	eosNumberPattern = regexp.MustCompile(`EOS\s+(\d+)`)
	zbarPattern      = regexp.MustCompile(`ZBAR\s*=\s*(` + floatPattern + `)`)
	abarPattern      = regexp.MustCompile(`ABAR\s*=\s*(` + floatPattern + `)`)
	denPattern       = regexp.MustCompile(`DEN\s*=\s*(` + floatPattern + `)`)
)

type quantity int

const (
	quantityNone quantity = iota
	quantityPressure
	quantityEnergy
)

func (q quantity) String() string {
	switch q {
	case quantityPressure:
		return "pressure"
	case quantityEnergy:
		return "energy"
	}
	return "none"
}

// sample is one value from a printed dump, in solver units.
type sample struct {
	Density     float64
	Temperature float64
	Quantity    quantity
	Value       float64
	Line        int
}

// DecodePrintedDump parses the library manager's printed EOS listing.
// Printed dumps carry no material name.
func DecodePrintedDump(data []byte) (*Table, error) {
	rec, err := parsePrintedDump(splitLines(data))
	if err != nil {
		return nil, err
	}
	return NewTable(rec)
}

func parsePrintedDump(lines []string) (Record, error) {
	if len(lines) <= PrintedBannerLine || strings.TrimSpace(lines[PrintedBannerLine]) != PrintedBanner {
		return Record{}, newError(ErrMalformedPrintedDump, PrintedBannerLine+1, -1, "missing %q banner", PrintedBanner)
	}
	if len(lines) <= PrintedHeaderLine {
		return Record{}, newError(ErrMalformedPrintedDump, len(lines), -1, "file ends before the header line")
	}
	info, err := parsePrintedHeader(lines[PrintedHeaderLine])
	if err != nil {
		return Record{}, err
	}

	samples, err := scanPrintedSamples(lines, PrintedHeaderLine+1)
	if err != nil {
		return Record{}, err
	}
	rec, err := pivot(samples)
	if err != nil {
		return Record{}, err
	}
	rec.Info = info
	return rec, nil
}

func parsePrintedHeader(line string) (Info, error) {
	var info Info
	lineNo := PrintedHeaderLine + 1

	if tok := strings.Fields(line); len(tok) > 0 {
		info.DateCreated = tok[0]
	}

	m := eosNumberPattern.FindStringSubmatch(line)
	if m == nil {
		return info, newError(ErrMalformedPrintedDump, lineNo, -1, "header has no EOS number")
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return info, newError(ErrMalformedPrintedDump, lineNo, -1, "EOS number %q: %v", m[1], err)
	}
	info.EOSNumber = &n

	for _, f := range []struct {
		name string
		re   *regexp.Regexp
		dst  **float64
	}{
		{"ZBAR", zbarPattern, &info.AverageAtomicNumber},
		{"ABAR", abarPattern, &info.AverageAtomicMass},
		{"DEN", denPattern, &info.AmbientDensity},
	} {
		m := f.re.FindStringSubmatch(line)
		if m == nil {
			return info, newError(ErrMalformedPrintedDump, lineNo, -1, "header has no %s", f.name)
		}
		v, err := parseFortranFloat(m[1])
		if err != nil {
			return info, newError(ErrMalformedPrintedDump, lineNo, -1, "%s %q is not a number", f.name, m[1])
		}
		*f.dst = &v
	}
	return info, nil
}

// scanPrintedSamples collects every value row from lines[from:] into a flat
// list; the matrix shape is only established by pivot.
func scanPrintedSamples(lines []string, from int) ([]sample, error) {
	var (
		samples []sample
		temps   []float64
		mode    = quantityNone
	)
	for n := from; n < len(lines); n++ {
		line, lineNo := lines[n], n+1
		tok := strings.Fields(line)
		if len(tok) == 0 {
			continue
		}

		switch tok[0] {
		case "Pressure":
			mode = quantityPressure
		case "Energy":
			mode = quantityEnergy
		}

		if k := slices.Index(tok, printedTempsMarker); k == 0 || k == 1 {
			temps = make([]float64, 0, len(tok)-k-1)
			for _, s := range tok[k+1:] {
				v, err := parseFortranFloat(s)
				if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
					return nil, newError(ErrMalformedPrintedDump, lineNo, -1, "temperature %q is not a number", s)
				}
				temps = append(temps, v)
			}
			continue
		}

		if !isNumberToken(tok[0]) {
			continue
		}
		density, _ := parseFortranFloat(tok[0])
		switch {
		case mode == quantityNone:
			return nil, newError(ErrMalformedPrintedDump, lineNo, -1, "value row before a Pressure or Energy marker")
		case len(temps) == 0:
			return nil, newError(ErrMalformedPrintedDump, lineNo, -1, "value row before a %s line", printedTempsMarker)
		}
		if need := printedValueStart + len(temps)*printedValueWidth; len(line) < need {
			return nil, newError(ErrMalformedPrintedDump, lineNo, -1,
				"row has room for %d values, %s line announced %d",
				max(len(line)-printedValueStart, 0)/printedValueWidth, printedTempsMarker, len(temps))
		}
		for i, t := range temps {
			raw := line[printedValueStart+i*printedValueWidth : printedValueStart+(i+1)*printedValueWidth]
			v, err := parseFortranFloat(strings.TrimSpace(raw))
			if err != nil {
				return nil, newError(ErrMalformedPrintedDump, lineNo, -1, "column %d value %q is not a number", i+1, raw)
			}
			samples = append(samples, sample{Density: density, Temperature: t, Quantity: mode, Value: v, Line: lineNo})
		}
	}
	if len(samples) == 0 {
		return nil, newError(ErrMalformedPrintedDump, 0, -1, "no value rows")
	}
	return samples, nil
}

// pivot arranges samples into ascending temperature and density axes and
// NT x NR matrices in display units. Each quantity needs exactly one value
// per (temperature, density) cell.
func pivot(samples []sample) (Record, error) {
	temps := uniqueSorted(samples, func(s sample) float64 { return s.Temperature })
	dens := uniqueSorted(samples, func(s sample) float64 { return s.Density })
	ti := indexOf(temps)
	di := indexOf(dens)
	nt, nr := len(temps), len(dens)

	grids := map[quantity][]float64{
		quantityPressure: make([]float64, nt*nr),
		quantityEnergy:   make([]float64, nt*nr),
	}
	seen := map[quantity][]bool{
		quantityPressure: make([]bool, nt*nr),
		quantityEnergy:   make([]bool, nt*nr),
	}
	for _, s := range samples {
		k := ti[s.Temperature]*nr + di[s.Density]
		if seen[s.Quantity][k] {
			return Record{}, newError(ErrMalformedPrintedDump, s.Line, -1,
				"second %s value for T=%g keV, density %g", s.Quantity, s.Temperature, s.Density)
		}
		seen[s.Quantity][k] = true
		grids[s.Quantity][k] = s.Value
	}
	for _, q := range []quantity{quantityPressure, quantityEnergy} {
		if k := slices.Index(seen[q], false); k >= 0 {
			return Record{}, newError(ErrMalformedPrintedDump, 0, -1,
				"no %s value for T=%g keV, density %g", q, temps[k/nr], dens[k%nr])
		}
	}

	return Record{
		Temperatures: units.Apply(temps, units.KeVToKelvin),
		Densities:    dens,
		Pressure:     units.Apply(grids[quantityPressure], units.DyneCm2ToGPa),
		Energy:       units.Apply(grids[quantityEnergy], units.SolverToDisplayEnergy),
	}, nil
}

func uniqueSorted(samples []sample, key func(sample) float64) []float64 {
	out := make([]float64, 0, len(samples))
	for _, s := range samples {
		out = append(out, key(s))
	}
	sort.Float64s(out)
	return slices.Compact(out)
}

func indexOf(xs []float64) map[float64]int {
	m := make(map[float64]int, len(xs))
	for i, x := range xs {
		m[x] = i
	}
	return m
}

// isNumberToken reports whether tok is a plain decimal number, which rules
// out words such as "Inf" that strconv would accept.
func isNumberToken(tok string) bool {
	if tok == "" {
		return false
	}
	switch c := tok[0]; {
	case c >= '0' && c <= '9', c == '-', c == '+', c == '.':
	default:
		return false
	}
	v, err := parseFortranFloat(tok)
	return err == nil && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// parseFortranFloat parses a float that may use a Fortran D exponent.
func parseFortranFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.NewReplacer("D", "E", "d", "e").Replace(s), 64)
}
