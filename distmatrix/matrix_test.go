package distmatrix_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tspdata/distmatrix"
)

// TestMatrix_Accessors covers Size, MaxWeight, At, Row and Rows on a known 3×3 instance.
func TestMatrix_Accessors(t *testing.T) {
	t.Parallel()

	m, _, err := distmatrix.Generate(3, 7)
	require.NoError(t, err)

	assert.Equal(t, 3, m.Size())
	assert.Equal(t, distmatrix.DefaultMaxWeight, m.MaxWeight())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 18, v)

	assert.Equal(t, []int{77, 0, 18}, m.Row(1))
	assert.Nil(t, m.Row(3))
	assert.Nil(t, m.Row(-1))
	assert.Equal(t, [][]int{{0, 40, 3}, {77, 0, 18}, {42, 70, 0}}, m.Rows())

	// Row hands out a copy.
	row := m.Row(0)
	row[1] = 1000
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 40, v)
}

// TestMatrix_AtOutOfRange checks every bounds branch returns ErrOutOfRange.
func TestMatrix_AtOutOfRange(t *testing.T) {
	t.Parallel()

	m, _, err := distmatrix.Generate(2, 2)
	require.NoError(t, err)

	cases := [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}}
	for _, c := range cases {
		_, err := m.At(c[0], c[1])
		require.Error(t, err)
		assert.Truef(t, errors.Is(err, distmatrix.ErrOutOfRange), "At(%d,%d)", c[0], c[1])
	}
}

// TestMatrix_WriteToErrors covers the nil receiver and nil writer guards.
func TestMatrix_WriteToErrors(t *testing.T) {
	t.Parallel()

	var nilM *distmatrix.Matrix
	_, err := nilM.WriteTo(&bytes.Buffer{})
	assert.True(t, errors.Is(err, distmatrix.ErrNilMatrix))
	assert.Contains(t, err.Error(), distmatrix.MethodWriteTo)

	m, _, err := distmatrix.Generate(2, 2)
	require.NoError(t, err)
	_, err = m.WriteTo(nil)
	assert.True(t, errors.Is(err, distmatrix.ErrNilWriter))
	assert.Contains(t, err.Error(), distmatrix.MethodWriteTo)
}

// TestMatrix_Empty checks the zero-order matrix.
func TestMatrix_Empty(t *testing.T) {
	t.Parallel()

	m, _, err := distmatrix.Generate(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, m.Size())
	assert.Equal(t, 0, m.MaxWeight())
	assert.Empty(t, m.Rows())
	assert.Equal(t, "data: 0\n\n", m.String())
}

// TestMatrix_TourCost scores paths on the 3×3 seed-7 instance
// [[0 40 3] [77 0 18] [42 70 0]].
func TestMatrix_TourCost(t *testing.T) {
	t.Parallel()

	m, _, err := distmatrix.Generate(3, 7)
	require.NoError(t, err)

	tests := []struct {
		name    string
		path    []int
		want    int
		wantErr error
	}{
		{"closed cycle 0-1-2-0", []int{0, 1, 2, 0}, 40 + 18 + 42, nil},
		{"closed cycle 0-2-1-0", []int{0, 2, 1, 0}, 3 + 70 + 77, nil},
		{"open path", []int{2, 1}, 70, nil},
		{"single vertex", []int{1}, 0, nil},
		{"empty path", nil, 0, nil},
		{"vertex past n", []int{0, 3}, 0, distmatrix.ErrOutOfRange},
		{"negative vertex", []int{-1, 0}, 0, distmatrix.ErrOutOfRange},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := m.TourCost(tc.path)
			if tc.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
				return
			}
			require.Error(t, err)
			assert.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
			assert.Contains(t, err.Error(), distmatrix.MethodTourCost)
		})
	}
}

// TestMatrix_NilReceiver checks a nil *Matrix reads as empty and reports
// ErrNilMatrix with method context instead of panicking.
func TestMatrix_NilReceiver(t *testing.T) {
	t.Parallel()

	var m *distmatrix.Matrix
	require.NotPanics(t, func() {
		assert.Equal(t, 0, m.Size())
		assert.Equal(t, 0, m.MaxWeight())
		assert.Nil(t, m.Row(0))
		assert.Nil(t, m.Rows())
		assert.Equal(t, "<nil>", m.String())
	})

	_, err := m.At(0, 0)
	assert.True(t, errors.Is(err, distmatrix.ErrNilMatrix))
	assert.Contains(t, err.Error(), distmatrix.MethodAt)

	_, err = m.TourCost([]int{0})
	assert.True(t, errors.Is(err, distmatrix.ErrNilMatrix))
	assert.Contains(t, err.Error(), distmatrix.MethodTourCost)
}
