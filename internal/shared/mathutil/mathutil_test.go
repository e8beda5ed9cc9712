package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalDensityPeaksAtMean(t *testing.T) {
	peak := NormalDensity(5, 5, 1)
	assert.InDelta(t, 1/math.Sqrt(2*math.Pi), peak, 1e-12)

	assert.Less(t, NormalDensity(4, 5, 1), peak)
	assert.Less(t, NormalDensity(6, 5, 1), peak)

	// Symmetric around the mean.
	assert.InDelta(t, NormalDensity(4, 5, 1), NormalDensity(6, 5, 1), 1e-12)
}

func TestInverseExpDecay(t *testing.T) {
	assert.InDelta(t, 1.0, InverseExpDecay(0, 0.5), 1e-12)
	assert.InDelta(t, math.Exp(-1), InverseExpDecay(1, 0.5), 1e-12)
	assert.InDelta(t, math.Exp(-2), InverseExpDecay(4, 0.5), 1e-12)

	// Monotonically decreasing.
	prev := 1.0
	for x := 0.5; x < 50; x += 0.5 {
		v := InverseExpDecay(x, 0.5)
		assert.Less(t, v, prev)
		prev = v
	}
}

func TestCDFIndex(t *testing.T) {
	cdf := []float64{0.25, 0.5, 0.75, 1.0}

	assert.Equal(t, 0, CDFIndex(0.0, cdf))
	assert.Equal(t, 0, CDFIndex(0.25, cdf)) // tie breaks low
	assert.Equal(t, 1, CDFIndex(0.3, cdf))
	assert.Equal(t, 3, CDFIndex(0.99, cdf))
	assert.Equal(t, 3, CDFIndex(1.0, cdf))
}

func TestCDFIndexEdges(t *testing.T) {
	assert.Equal(t, -1, CDFIndex(0.5, nil))

	// A draw beyond a CDF that never reaches 1.0 resolves to the last index.
	assert.Equal(t, 1, CDFIndex(0.99, []float64{0.4, 0.8}))
}
