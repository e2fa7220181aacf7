package eosconv

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// ReadOptions configures Read and ReadFile.
type ReadOptions struct {
	// Format skips detection when not FormatAuto.
	Format Format
	// MaterialName names tables whose source carries no name (printed dumps).
	MaterialName string
	Logger       *slog.Logger
}

// WriteOptions configures Encode and WriteFile.
type WriteOptions struct {
	// Format selects the output representation. FormatAuto picks the
	// spreadsheet for .xlsx paths and fixed-width otherwise.
	Format Format
	// Now dates the default fixed-width header; time.Now when nil.
	Now    func() time.Time
	Logger *slog.Logger
}

func logger(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}

// ReadFile loads and decodes the EOS table at path.
func ReadFile(path string, opts ReadOptions) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read EOS table: %w", err)
	}
	t, err := Read(path, data, opts)
	if err != nil {
		return nil, withPath(err, path)
	}
	return t, nil
}

// Read decodes data. name is used for extension-based detection and in
// errors.
func Read(name string, data []byte, opts ReadOptions) (*Table, error) {
	log := logger(opts.Logger)

	format := opts.Format
	if format == FormatAuto {
		var err error
		if format, err = Detect(name, data); err != nil {
			return nil, err
		}
		log.Debug("detected EOS format", "file", name, "format", format)
	}

	var (
		rec Record
		err error
	)
	switch format {
	case FormatFixedWidth:
		rec, err = parseFixedWidth(splitLines(data))
	case FormatPrintedDump:
		rec, err = parsePrintedDump(splitLines(data))
	case FormatSpreadsheet:
		if !bytes.HasPrefix(data, []byte(xlsxZipSignature)) {
			return nil, &ParseError{Kind: ErrUnsupportedFormat, Path: name, Field: -1,
				Msg: "not an Office Open XML workbook; legacy .xls files must be saved as .xlsx"}
		}
		rec, err = parseSpreadsheet(bytes.NewReader(data), int64(len(data)))
	default:
		return nil, &ParseError{Kind: ErrUnrecognizedFormat, Path: name, Field: -1, Msg: format.String()}
	}
	if err != nil {
		return nil, err
	}
	if rec.MaterialName == "" {
		rec.MaterialName = opts.MaterialName
	}

	t, err := NewTable(rec)
	if err != nil {
		return nil, err
	}
	log.Debug("decoded EOS table", "file", name, "format", format, "material", t.name, "nt", t.NT(), "nr", t.NR())
	return t, nil
}

// OutputFormat resolves the format WriteFile uses for path.
func OutputFormat(path string, f Format) Format {
	if f != FormatAuto {
		return f
	}
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatSpreadsheet
	}
	return FormatFixedWidth
}

// Encode renders t in format f.
func Encode(t *Table, f Format, opts WriteOptions) ([]byte, error) {
	switch f {
	case FormatFixedWidth:
		return EncodeFixedWidth(t, EncodeOptions{Now: opts.Now})
	case FormatSpreadsheet:
		return EncodeSpreadsheet(t)
	case FormatPrintedDump:
		return nil, fmt.Errorf("%s is produced by the EOS library manager: %w", f, ErrUnsupportedFormat)
	}
	return nil, fmt.Errorf("%s: %w", f, ErrUnrecognizedFormat)
}

// WriteFile encodes t and writes it to path. Nothing is written unless
// encoding succeeds, and the file is replaced atomically.
func WriteFile(path string, t *Table, opts WriteOptions) error {
	format := OutputFormat(path, opts.Format)
	data, err := Encode(t, format, opts)
	if err != nil {
		return withPath(err, path)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("write EOS table: %w", err)
	}
	logger(opts.Logger).Debug("wrote EOS table", "file", path, "format", format, "bytes", len(data))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer os.Remove(tmp) // no-op after a successful rename

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
