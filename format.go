package eosconv

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// Format identifies one of the supported EOS representations.
type Format int

const (
	FormatAuto        Format = iota // detect from the file
	FormatFixedWidth                // solver-native 15-character field format
	FormatPrintedDump               // library manager printed table
	FormatSpreadsheet               // Info/Pressure/Energy workbook
)

func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatFixedWidth:
		return "fixed-width"
	case FormatPrintedDump:
		return "printed"
	case FormatSpreadsheet:
		return "spreadsheet"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat maps a user supplied format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "fixed-width", "fixed", "fixedwidth", "dat":
		return FormatFixedWidth, nil
	case "printed", "printed-dump", "hyadlibm":
		return FormatPrintedDump, nil
	case "spreadsheet", "excel", "xlsx":
		return FormatSpreadsheet, nil
	}
	return FormatAuto, fmt.Errorf("%q: %w", s, ErrUnrecognizedFormat)
}

const (
	// PrintedBanner is the line the library manager writes at PrintedBannerLine.
	PrintedBanner     = "The HYADES Equation-of-State Library"
	PrintedBannerLine = 2 // 0-based

	fieldWidth    = 15
	fieldsPerLine = 5
	lineWidth     = fieldWidth * fieldsPerLine

	// fixed-width payload lines inspected during detection, 0-based [2, 10)
	detectFirstLine = 2
	detectEndLine   = 10
)

var spreadsheetExts = map[string]bool{
	".xlsx": true,
	".xls":  true,
}

// Detect classifies a file from its name and content. The first matching
// check wins: spreadsheet extension, printed-dump banner, fixed-width line
// lengths.
func Detect(name string, data []byte) (Format, error) {
	if spreadsheetExts[strings.ToLower(filepath.Ext(name))] {
		return FormatSpreadsheet, nil
	}

	lines := splitLines(data)
	if len(lines) > PrintedBannerLine && strings.TrimSpace(lines[PrintedBannerLine]) == PrintedBanner {
		return FormatPrintedDump, nil
	}
	if looksFixedWidth(lines) {
		return FormatFixedWidth, nil
	}

	return FormatAuto, &ParseError{
		Kind:  ErrUnrecognizedFormat,
		Path:  name,
		Field: -1,
		Msg: fmt.Sprintf("not a spreadsheet, %s, or %s EOS; pass an explicit format (spreadsheet, printed or fixed-width) if the file is correct",
			FormatPrintedDump, FormatFixedWidth),
	}
}

// looksFixedWidth reports whether the payload lines in the detection window
// are exactly lineWidth characters. The last line of a short file may be a
// partial payload line.
func looksFixedWidth(lines []string) bool {
	end := min(len(lines), detectEndLine)
	if end <= detectFirstLine {
		return false
	}
	for i := detectFirstLine; i < end; i++ {
		n := len(lines[i])
		last := i == len(lines)-1 && len(lines) < detectEndLine
		if n == lineWidth || (last && n > 0 && n < lineWidth) {
			continue
		}
		return false
	}
	return true
}

// splitLines splits data into lines without their terminators. CRLF is
// treated as LF and a trailing terminator does not produce an empty line.
func splitLines(data []byte) []string {
	data = bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	if len(data) == 0 {
		return nil
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.Split(s, "\n")
}
