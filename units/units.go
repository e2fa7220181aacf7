// Package units converts between the solver's native EOS units and the
// display units used by the in-memory table model.
//
//	quantity     solver       display
//	temperature  keV          K
//	density      g/cm^3       g/cm^3
//	pressure     dyne/cm^2    GPa
//	energy       erg/g        erg/g
package units

const (
	// KelvinPerKeV is the temperature factor used by the EOS library tools.
	KelvinPerKeV = 11605 * 1000

	// GPaPerDyneCm2 converts dyne/cm^2 to gigapascals.
	GPaPerDyneCm2 = 1e-10

	// DyneCm2PerGPa converts gigapascals to dyne/cm^2.
	DyneCm2PerGPa = 1e10

	// EnergyFactor is applied to specific energies in both directions.
	// TODO: have the energy scaling confirmed against the EOS library
	// documentation; tables are currently carried through in erg/g unchanged.
	EnergyFactor = 1
)

// KeVToKelvin converts a solver temperature to Kelvin.
func KeVToKelvin(t float64) float64 { return t * KelvinPerKeV }

// KelvinToKeV converts a display temperature back to keV.
func KelvinToKeV(t float64) float64 { return t / KelvinPerKeV }

// DyneCm2ToGPa converts a solver pressure to gigapascals.
func DyneCm2ToGPa(p float64) float64 { return p * GPaPerDyneCm2 }

// GPaToDyneCm2 converts a display pressure back to dyne/cm^2.
func GPaToDyneCm2(p float64) float64 { return p * DyneCm2PerGPa }

// SolverToDisplayEnergy converts a solver specific energy to display units.
func SolverToDisplayEnergy(e float64) float64 { return e * EnergyFactor }

// DisplayToSolverEnergy converts a display specific energy to solver units.
func DisplayToSolverEnergy(e float64) float64 { return e / EnergyFactor }

// Apply returns a new slice holding f applied to every element of xs.
func Apply(xs []float64, f func(float64) float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}
