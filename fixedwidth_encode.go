package eosconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/aerissecure/eosconv/units"
)

const (
	maxIntWidth    = 5
	headerDateForm = "Jan-02-2006"
)

// EncodeOptions controls fixed-width rendering.
type EncodeOptions struct {
	// Now dates the default header when the table has no notes. time.Now
	// when nil.
	Now func() time.Time
}

// DataLength is the SIZE value written on the info line.
func DataLength(nr, nt int) int { return 2*nr*nt + nr + nt + 2 }

// EncodeFixedWidth renders t in the solver-native format. The complete
// document is built before it is returned.
func EncodeFixedWidth(t *Table, opts EncodeOptions) ([]byte, error) {
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	info := t.info
	switch {
	case strings.TrimSpace(t.name) == "":
		return nil, newError(ErrMissingInfo, 0, -1, "material name is not set")
	case strings.ContainsFunc(t.name, unicode.IsSpace):
		return nil, newError(ErrFieldWidthExceeded, 1, -1, "material name %q must be one word", t.name)
	case info.EOSNumber == nil:
		return nil, newError(ErrMissingInfo, 0, -1, "EOS number is not set")
	case info.AverageAtomicNumber == nil:
		return nil, newError(ErrMissingInfo, 0, -1, "average atomic number is not set")
	case info.AverageAtomicMass == nil:
		return nil, newError(ErrMissingInfo, 0, -1, "average atomic mass is not set")
	case info.AmbientDensity == nil:
		return nil, newError(ErrMissingInfo, 0, -1, "ambient density is not set")
	}

	id := strconv.Itoa(*info.EOSNumber)
	if len(id) > maxIntWidth {
		return nil, newError(ErrFieldWidthExceeded, 2, -1, "EOS number %s is longer than %d digits", id, maxIntWidth)
	}
	size := strconv.Itoa(DataLength(t.NR(), t.NT()))
	if len(size) > maxIntWidth {
		return nil, newError(ErrFieldWidthExceeded, 2, -1, "data length %s is longer than %d digits", size, maxIntWidth)
	}

	var props [3]string
	for k, v := range []float64{*info.AverageAtomicNumber, *info.AverageAtomicMass, *info.AmbientDensity} {
		s, err := formatField(v)
		if err != nil {
			return nil, newError(ErrFieldWidthExceeded, 2, -1, "%s", err)
		}
		props[k] = s
	}

	payload, err := encodePayload(t)
	if err != nil {
		return nil, err
	}

	header := t.Header("EOS Table created on " + now().Format(headerDateForm))
	header = strings.NewReplacer("\r", " ", "\n", " ").Replace(header)

	var b strings.Builder
	b.Grow(len(header) + 64 + len(payload) + len(payload)/lineWidth + 1)
	b.WriteString(header)
	b.WriteByte('\n')
	fmt.Fprintf(&b, " %5s   %s%s%s    %5s\n", id, props[0], props[1], props[2], size)
	for off := 0; off < len(payload); off += lineWidth {
		b.WriteString(payload[off:min(off+lineWidth, len(payload))])
		b.WriteByte('\n')
	}
	return []byte(b.String()), nil
}

func encodePayload(t *Table) (string, error) {
	nr, nt := t.NR(), t.NT()
	var b strings.Builder
	b.Grow((2 + nr + nt + 2*nr*nt) * fieldWidth)

	field := 0
	write := func(vs ...float64) error {
		for _, v := range vs {
			s, err := formatField(v)
			if err != nil {
				return newError(ErrFieldWidthExceeded, 0, field, "%s", err)
			}
			b.WriteString(s)
			field++
		}
		return nil
	}

	if err := write(float64(nr), float64(nt)); err != nil {
		return "", err
	}
	if err := write(t.densities...); err != nil {
		return "", err
	}
	if err := write(units.Apply(t.temperatures, units.KelvinToKeV)...); err != nil {
		return "", err
	}
	if err := write(units.Apply(t.pressure.RawMatrix().Data, units.GPaToDyneCm2)...); err != nil {
		return "", err
	}
	if err := write(units.Apply(t.energy.RawMatrix().Data, units.DisplayToSolverEnergy)...); err != nil {
		return "", err
	}
	return b.String(), nil
}

// formatField renders v as a 15-character field: a sign or a space, then
// the mantissa with 8 fraction digits and a two-digit exponent,
// e.g. " 1.23456780E+00" and "-1.23456780E+00".
func formatField(v float64) (string, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", fmt.Errorf("%v has no %d-character form", v, fieldWidth)
	}
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	s := strconv.FormatFloat(v, 'E', 8, 64)
	if v >= 0 {
		s = " " + s
	}
	if len(s) != fieldWidth {
		return "", fmt.Errorf("%s is wider than %d characters", strings.TrimSpace(s), fieldWidth)
	}
	return s, nil
}
