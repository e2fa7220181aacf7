package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
)

func TestKeVToKelvin(t *testing.T) {
	assert.Equal(t, 11605000.0, KeVToKelvin(1.0))
	assert.Equal(t, 0.0, KeVToKelvin(0))
	assert.InDelta(t, 1.0, KelvinToKeV(11605000.0), 1e-15)
}

func TestDyneCm2ToGPa(t *testing.T) {
	assert.Equal(t, 1e-10, DyneCm2ToGPa(1.0))
	assert.InDelta(t, 1.0, GPaToDyneCm2(1e-10), 1e-15)
	assert.InDelta(t, -250.0, DyneCm2ToGPa(GPaToDyneCm2(-250.0)), 1e-12)
}

func TestEnergyIsIdentity(t *testing.T) {
	for _, e := range []float64{0, 1, -3.5e12, 7.25e-3} {
		assert.Equal(t, e, SolverToDisplayEnergy(e))
		assert.Equal(t, e, DisplayToSolverEnergy(e))
	}
}

func TestApplyRoundTrip(t *testing.T) {
	temps := []float64{0, 290, 1e4, 2.5e7}
	keV := Apply(temps, KelvinToKeV)
	back := Apply(keV, KeVToKelvin)
	assert.True(t, floats.EqualApprox(temps, back, 1e-6), "got %v", back)

	// input untouched
	assert.Equal(t, 290.0, temps[1])
}
