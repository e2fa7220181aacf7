package eosconv

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnrecognizedFormat   = errors.New("unrecognized EOS format")
	ErrUnsupportedFormat    = errors.New("unsupported EOS format")
	ErrMalformedFixedWidth  = errors.New("malformed fixed-width EOS file")
	ErrMalformedPrintedDump = errors.New("malformed printed EOS dump")
	ErrMalformedSpreadsheet = errors.New("malformed EOS spreadsheet")
	ErrFieldWidthExceeded   = errors.New("field width exceeded")
	ErrDimensionMismatch    = errors.New("dimension mismatch")
	ErrAxisOrder            = errors.New("temperatures not strictly increasing")
	ErrMissingInfo          = errors.New("missing EOS info")
)

// ParseError locates a decoding or validation failure. It unwraps to one of
// the Err* kinds above.
type ParseError struct {
	Kind  error
	Path  string
	Line  int // 1-based; 0 when not tied to a line
	Field int // 0-based payload field index; -1 when not tied to a field
	Msg   string
}

func (e *ParseError) Error() string {
	var b strings.Builder
	if e.Path != "" {
		b.WriteString(e.Path)
		if e.Line > 0 {
			fmt.Fprintf(&b, ":%d", e.Line)
		}
		b.WriteString(": ")
	} else if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	if e.Field >= 0 {
		fmt.Fprintf(&b, "field %d: ", e.Field)
	}
	if e.Msg != "" {
		b.WriteString(e.Msg)
		b.WriteString(": ")
	}
	b.WriteString(e.Kind.Error())
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Kind }

func newError(kind error, line, field int, format string, a ...any) *ParseError {
	return &ParseError{Kind: kind, Line: line, Field: field, Msg: fmt.Sprintf(format, a...)}
}

// withPath stamps path onto err when it is a *ParseError that has none.
func withPath(err error, path string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Path == "" {
		pe.Path = path
	}
	return err
}
