package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(12345)
	b := New(12345)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uint64N(1000), b.Uint64N(1000))
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 50; i++ {
		if a.Float64() == b.Float64() {
			same++
		}
	}
	assert.Less(t, same, 50)
}

func TestFloat64Range(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		v := s.Float64()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestUint64NRange(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		assert.Less(t, s.Uint64N(8), uint64(8))
	}
}

func TestStreamsAreIndependent(t *testing.T) {
	// Draining one stream must not affect another with the same seed.
	a := New(99)
	for i := 0; i < 10; i++ {
		a.Float64()
	}

	b := New(99)
	c := New(99)
	assert.Equal(t, b.Float64(), c.Float64())
}
