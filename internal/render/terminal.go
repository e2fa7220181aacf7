// Package render formats EOS tables for a terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"gonum.org/v1/gonum/mat"

	"github.com/aerissecure/eosconv"
)

const (
	defaultWidth   = 80
	defaultMaxRows = 6
	cellWidth      = 11
)

// Terminal renders table summaries as styled text via lipgloss.
type Terminal struct {
	theme   Theme
	width   int
	maxRows int
}

// NewTerminal creates a renderer. A width of zero or less means 80 columns.
func NewTerminal(theme Theme, width int) *Terminal {
	if width <= 0 {
		width = defaultWidth
	}
	return &Terminal{theme: theme, width: width, maxRows: defaultMaxRows}
}

// WithMaxRows limits how many temperature rows each matrix preview shows.
func (t *Terminal) WithMaxRows(n int) *Terminal {
	if n > 0 {
		t.maxRows = n
	}
	return t
}

// Render returns the summary of tbl: info fields, axis ranges and a corner
// of each matrix.
func (t *Terminal) Render(tbl *eosconv.Table) string {
	sections := []string{
		t.renderInfo(tbl),
		t.renderAxes(tbl),
		t.renderMatrix("Pressure (GPa)", tbl, tbl.Pressure()),
		t.renderMatrix("Energy (erg/g)", tbl, tbl.Energy()),
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderInfo(tbl *eosconv.Table) string {
	info := tbl.Info()
	name := tbl.MaterialName()
	if name == "" {
		name = "(unnamed)"
	}

	var sb strings.Builder
	sb.WriteString(t.theme.Title.Render(name))
	sb.WriteString("\n")

	rows := [][2]string{
		{"EOS number", intOrMissing(info.EOSNumber)},
		{"ZBAR", floatOrMissing(info.AverageAtomicNumber)},
		{"ABAR", floatOrMissing(info.AverageAtomicMass)},
		{"Density", floatOrMissing(info.AmbientDensity)},
	}
	if info.DateCreated != "" {
		rows = append(rows, [2]string{"Created", info.DateCreated})
	}
	if info.Notes != "" {
		rows = append(rows, [2]string{"Notes", info.Notes})
	}

	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, runewidth.StringWidth(r[0]))
	}
	for _, r := range rows {
		value := t.theme.Value.Render(truncate(r[1], t.width-labelWidth-6))
		if r[1] == "" {
			value = t.theme.Missing.Render("missing")
		}
		fmt.Fprintf(&sb, "  %s %s %s\n", t.theme.Bullet, t.theme.Label.Render(padRight(r[0]+":", labelWidth+1)), value)
	}
	return sb.String()
}

func (t *Terminal) renderAxes(tbl *eosconv.Table) string {
	tlo, thi := tbl.TemperatureRange()
	dlo, dhi := tbl.DensityRange()
	var sb strings.Builder
	fmt.Fprintf(&sb, "  %s %s\n", t.theme.Bullet,
		t.theme.Axis.Render(fmt.Sprintf("%d temperatures, %s to %s K", tbl.NT(), num(tlo), num(thi))))
	fmt.Fprintf(&sb, "  %s %s\n", t.theme.Bullet,
		t.theme.Axis.Render(fmt.Sprintf("%d densities, %s to %s g/cm^3", tbl.NR(), num(dlo), num(dhi))))
	return sb.String()
}

// renderMatrix prints the top-left corner of m that fits the terminal
// width, temperatures down and densities across.
func (t *Terminal) renderMatrix(title string, tbl *eosconv.Table, m mat.Matrix) string {
	nt, nr := m.Dims()
	cols := min(nr, max((t.width-2-cellWidth)/(cellWidth+1), 1))
	rows := min(nt, t.maxRows)
	temps, dens := tbl.Temperatures(), tbl.Densities()

	var sb strings.Builder
	sb.WriteString(t.theme.Title.Render(title))
	sb.WriteString("\n  ")
	sb.WriteString(t.theme.Muted.Render(padLeft("T \\ rho", cellWidth)))
	for j := 0; j < cols; j++ {
		sb.WriteString(" ")
		sb.WriteString(t.theme.Axis.Render(padLeft(num(dens[j]), cellWidth)))
	}
	sb.WriteString("\n")
	for i := 0; i < rows; i++ {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Axis.Render(padLeft(num(temps[i]), cellWidth)))
		for j := 0; j < cols; j++ {
			sb.WriteString(" ")
			sb.WriteString(t.theme.Value.Render(padLeft(num(m.At(i, j)), cellWidth)))
		}
		sb.WriteString("\n")
	}
	if rows < nt || cols < nr {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Muted.Render(fmt.Sprintf("(showing %d of %d rows, %d of %d columns)", rows, nt, cols, nr)))
		sb.WriteString("\n")
	}
	return sb.String()
}

func num(v float64) string { return strconv.FormatFloat(v, 'g', 5, 64) }

func intOrMissing(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func floatOrMissing(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func truncate(s string, width int) string {
	if width < 4 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "...")
}

func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func padLeft(s string, width int) string {
	return runewidth.FillLeft(s, width)
}
