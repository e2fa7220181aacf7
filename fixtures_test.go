package eosconv

import (
	"fmt"
	"math"
	"strings"
)

// diamondFixedWidth is a 2-density, 3-temperature table in the solver
// format. Pressures and energies count up temperature-major.
const diamondFixedWidth = "Diamond test table\n" +
	"   341    6.00000000E+00 1.20110000E+01 3.51500000E+00       19\n" +
	" 2.00000000E+00 3.00000000E+00 1.00000000E+00 2.50000000E+00 1.00000000E-03\n" +
	" 1.00000000E-02 1.00000000E-01 1.00000000E+10 2.00000000E+10 3.00000000E+10\n" +
	" 4.00000000E+10 5.00000000E+10 6.00000000E+10-1.50000000E+11 0.00000000E+00\n" +
	" 2.50000000E+11 3.00000000E+11 4.00000000E+11 5.00000000E+11\n"

var (
	diamondTemperatures = []float64{11605, 116050, 1160500}
	diamondDensities    = []float64{1.0, 2.5}
	diamondPressure     = []float64{1, 2, 3, 4, 5, 6}
	diamondEnergy       = []float64{-1.5e11, 0, 2.5e11, 3e11, 4e11, 5e11}
)

func diamondRecord() Record {
	return Record{
		MaterialName: "Diamond",
		Info: Info{
			EOSNumber:           Int(341),
			AverageAtomicNumber: Float(6),
			AverageAtomicMass:   Float(12.011),
			AmbientDensity:      Float(3.515),
			Notes:               "Diamond test table",
		},
		Temperatures: diamondTemperatures,
		Densities:    diamondDensities,
		Pressure:     diamondPressure,
		Energy:       diamondEnergy,
	}
}

// printedRow lays out a printed-dump value row: the density, then one
// 11-character field per value starting at column 15.
func printedRow(density string, values ...string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %-10s   ", density)
	for _, v := range values {
		fmt.Fprintf(&b, "%11s", v)
	}
	return b.String()
}

// diamondPrinted holds the same table as diamondFixedWidth, split over two
// temperature blocks with the energy blocks in reverse order.
var diamondPrinted = strings.Join([]string{
	" HYADLIBM  print eos",
	"",
	"          The HYADES Equation-of-State Library",
	"",
	"   Cascade Applied Sciences",
	"",
	"",
	" 10/19/21   EOS   341   ZBAR =  6.0000E+00  ABAR =  1.2011E+01  DEN =  3.5150E+00",
	"",
	" Pressure (dyne/cm2)",
	"   Density     T=  1.0000E-03  1.0000E-02",
	printedRow("1.0000E+00", "1.0000E+10", "3.0000E+10"),
	printedRow("2.5000E+00", "2.0000E+10", "4.0000E+10"),
	"",
	"   Density     T=  1.0000E-01",
	printedRow("1.0000E+00", "5.0000E+10"),
	printedRow("2.5000E+00", "6.0000E+10"),
	"",
	" Energy (erg/g)",
	"   Density     T=  1.0000E-01",
	printedRow("1.0000E+00", "4.0000E+11"),
	printedRow("2.5000E+00", "5.0000E+11"),
	"   Density     T=  1.0000E-03  1.0000E-02",
	printedRow("1.0000E+00", "-1.5000E+11", "2.5000E+11"),
	printedRow("2.5000E+00", "0.0000E+00", "3.0000E+11"),
	"",
}, "\n")

func negZero() float64 { return math.Copysign(0, -1) }
func nan() float64 { return math.NaN() }
func inf() float64 { return math.Inf(1) }
