package circuit

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a square, row-major grid of edge weights indexed by station
// pair (origin, destination). A cell of +Inf means "no direct edge".
type Matrix struct {
	n    int       // number of stations (rows == cols)
	data []float64 // flat backing storage, length == n*n
}

// NewMatrix creates an n×n Matrix with every cell set to +Inf.
// Complexity: O(n²) time and memory.
func NewMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, ErrInvalidDimensions
	}
	data := make([]float64, n*n)
	inf := math.Inf(1)
	for i := range data {
		data[i] = inf
	}

	return &Matrix{n: n, data: data}, nil
}

// N returns the matrix order (station count).
func (m *Matrix) N() int {
	return m.n
}

// At retrieves the weight of the edge i→j, bounds-checked.
func (m *Matrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return 0, fmt.Errorf("circuit: At(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return m.data[i*m.n+j], nil
}

// Set assigns weight w to the edge i→j, bounds-checked.
func (m *Matrix) Set(i, j int, w float64) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("circuit: Set(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	m.data[i*m.n+j] = w

	return nil
}

// Clone returns a deep copy of the matrix.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Matrix{n: m.n, data: data}
}

// Equal reports whether two matrices are bit-identical in shape and cells.
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.n != o.n {
		return false
	}
	for i := range m.data {
		// NaN never enters a weight matrix, so plain equality suffices
		// (+Inf compares equal to +Inf).
		if m.data[i] != o.data[i] {
			return false
		}
	}

	return true
}

// at reads a cell on the package-internal hot path. Callers guarantee
// indices are in range.
func (m *Matrix) at(i, j int) float64 {
	return m.data[i*m.n+j]
}

// set writes a cell on the package-internal hot path.
func (m *Matrix) set(i, j int, w float64) {
	m.data[i*m.n+j] = w
}

// String implements fmt.Stringer for debugging.
func (m *Matrix) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < m.n; i++ {
		b.WriteByte('[')
		for j = 0; j < m.n; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", m.data[i*m.n+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
