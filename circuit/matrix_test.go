package circuit_test

import (
	"math"
	"testing"

	"github.com/railkit/roundtour/circuit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMatrix_InfInitialized confirms every cell starts as "no edge".
func TestNewMatrix_InfInitialized(t *testing.T) {
	m, err := circuit.NewMatrix(3)
	require.NoError(t, err)
	require.Equal(t, 3, m.N())

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			w, err := m.At(i, j)
			require.NoError(t, err)
			assert.True(t, math.IsInf(w, 1), "cell (%d,%d)", i, j)
		}
	}
}

// TestNewMatrix_InvalidDimensions rejects non-positive sizes.
func TestNewMatrix_InvalidDimensions(t *testing.T) {
	_, err := circuit.NewMatrix(0)
	assert.ErrorIs(t, err, circuit.ErrInvalidDimensions)
	_, err = circuit.NewMatrix(-1)
	assert.ErrorIs(t, err, circuit.ErrInvalidDimensions)
}

// TestMatrix_SetAt round-trips a weight and bounds-checks indices.
func TestMatrix_SetAt(t *testing.T) {
	m, err := circuit.NewMatrix(2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 7.5))
	w, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 7.5, w)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfBounds)
	err = m.Set(0, -1, 1)
	assert.ErrorIs(t, err, circuit.ErrIndexOutOfBounds)
}

// TestMatrix_Clone is a deep copy: mutating the clone leaves the
// original untouched.
func TestMatrix_Clone(t *testing.T) {
	m, err := circuit.NewMatrix(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 1, 3))

	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	w, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w, "original must not see the clone's write")
	assert.False(t, m.Equal(c))
	assert.True(t, m.Equal(m.Clone()))
}
