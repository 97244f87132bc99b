package numeric

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTauEstimator_SeedsFromLambda(t *testing.T) {
	tau := NewTauEstimator(0.01)
	assert.Equal(t, 100, tau.Tau())
}

func TestTauEstimator_UpdateCompoundsCeilings(t *testing.T) {
	// tau0=100, alpha=0.5, two consecutive 10ms bursts
	tau := NewTauEstimator(0.01)
	require.Equal(t, 100, tau.Tau())

	got := tau.Update(0.5, 10)
	assert.Equal(t, 55, got) // ceil(0.5*10 + 0.5*100) = 55

	got = tau.Update(0.5, 10)
	assert.Equal(t, 33, got) // ceil(0.5*10 + 0.5*55) = 32.5 -> 33
}

func TestSafeDiv(t *testing.T) {
	assert.Equal(t, 2.0, SafeDiv(10, 5))
	assert.Equal(t, 0.0, SafeDiv(10, 0))
}
