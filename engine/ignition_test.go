package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIgnitionTemperatureAtKnots(t *testing.T) {
	require.InDelta(t, 8.06, IgnitionTemperature(0.0), 1e-9)
	require.InDelta(t, 7.88, IgnitionTemperature(3.0), 1e-9)
	require.InDelta(t, 7.15, IgnitionTemperature(9.0), 1e-9)
}

func TestIgnitionTemperatureInterpolates(t *testing.T) {
	require.InDelta(t, 7.865, IgnitionTemperature(3.25), 1e-9)
}

func TestIgnitionTemperatureExtrapolates(t *testing.T) {
	// low-density side continues the first segment
	require.InDelta(t, 8.36, IgnitionTemperature(-5.0), 1e-9)
	// high-density side continues the last segment
	require.InDelta(t, 6.81, IgnitionTemperature(10.0), 1e-9)
}
