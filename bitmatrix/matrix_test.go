// SPDX-License-Identifier: MIT

package bitmatrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/bitgraph/bitmatrix"
	"github.com/stretchr/testify/require"
)

// TestNewInvalidSize ensures non-positive and oversized sizes are rejected.
func TestNewInvalidSize(t *testing.T) {
	for _, n := range []int{0, -1, -100, bitmatrix.MaxSize + 1, 100000000} {
		m, err := bitmatrix.New(n)
		require.Nil(t, m)
		require.ErrorIs(t, err, bitmatrix.ErrInvalidSize)

		g, err := bitmatrix.NewGraph(n)
		require.Nil(t, g)
		require.ErrorIs(t, err, bitmatrix.ErrInvalidSize)
	}
}

// TestMaxSizeCap checks that inferred sizes never exceed MaxSize.
func TestMaxSizeCap(t *testing.T) {
	require.Equal(t, bitmatrix.MaxSize, bitmatrix.InferSize(math.MaxInt))
	require.Equal(t, bitmatrix.MaxSize, bitmatrix.InferSize(bitmatrix.ByteLen(bitmatrix.MaxSize)+1))
	require.Equal(t, bitmatrix.MaxSize-1, bitmatrix.InferSize(bitmatrix.ByteLen(bitmatrix.MaxSize)-1))
}

// TestNewZeroFilled checks allocation length and zero content.
func TestNewZeroFilled(t *testing.T) {
	m := MustMatrix(t, 3)
	require.Equal(t, 3, m.Size())
	require.Len(t, m.Bytes(), 2)
	require.Zero(t, m.Count())
	require.False(t, m.ForceSymmetry())
}

// TestWithBufferCopies verifies truncation, padding, trailing-bit clearing and
// that the caller's slice is never aliased.
func TestWithBufferCopies(t *testing.T) {
	t.Run("Truncate", func(t *testing.T) {
		src := []byte{0xFF, 0xFF, 0xFF}
		m := MustMatrix(t, 3, bitmatrix.WithBuffer(src))
		require.Equal(t, []byte{0xFF, 0x01}, m.Bytes()) // 9 bits used
		require.Equal(t, 9, m.Count())

		src[0] = 0
		v, err := m.Read(0, 0)
		require.NoError(t, err)
		require.True(t, v, "matrix must not alias caller buffer")
	})
	t.Run("Pad", func(t *testing.T) {
		m := MustMatrix(t, 4, bitmatrix.WithBuffer([]byte{0x01}))
		require.Equal(t, []byte{0x01, 0x00}, m.Bytes())
	})
}

// TestReadWriteRoundTrip writes each cell in turn and checks no other cell moves.
func TestReadWriteRoundTrip(t *testing.T) {
	m, err := bitmatrix.FromRows(RandomRows(1, N))
	require.NoError(t, err)

	for x := 0; x < N; x++ {
		for y := 0; y < N; y++ {
			for _, v := range []bool{true, false} {
				before := Snapshot(t, m)
				require.NoError(t, m.Write(x, y, v))

				got, err := m.Read(x, y)
				require.NoError(t, err)
				require.Equal(t, v, got)

				before[x][y] = v
				require.Equal(t, before, Snapshot(t, m))
			}
		}
	}
}

// TestOutOfRange ensures every accessor reports ErrIndexOutOfRange.
func TestOutOfRange(t *testing.T) {
	m := MustMatrix(t, 3)

	_, err := m.Read(-1, 0)
	require.ErrorIs(t, err, bitmatrix.ErrIndexOutOfRange)
	_, err = m.Read(0, 3)
	require.ErrorIs(t, err, bitmatrix.ErrIndexOutOfRange)
	require.ErrorIs(t, m.Write(3, 0, true), bitmatrix.ErrIndexOutOfRange)
	_, err = m.ReadRow(3)
	require.ErrorIs(t, err, bitmatrix.ErrIndexOutOfRange)
	_, err = m.ReadColumn(-1)
	require.ErrorIs(t, err, bitmatrix.ErrIndexOutOfRange)
	require.ErrorIs(t, m.WriteRowValue(5, true), bitmatrix.ErrIndexOutOfRange)
	require.ErrorIs(t, m.WriteRowSequence(-2, []bool{true}), bitmatrix.ErrIndexOutOfRange)
	require.ErrorIs(t, m.WriteColumnValue(3, true), bitmatrix.ErrIndexOutOfRange)
	require.ErrorIs(t, m.WriteColumnSequence(3, []bool{true}), bitmatrix.ErrIndexOutOfRange)

	// failed multi-cell writes leave no trace
	require.Zero(t, m.Count())
}

// TestRowColumnConsistency checks ReadRow(x)[y] == Read(x,y) == ReadColumn(y)[x].
func TestRowColumnConsistency(t *testing.T) {
	m, err := bitmatrix.FromRows(RandomRows(7, N))
	require.NoError(t, err)

	for x := 0; x < N; x++ {
		row, err := m.ReadRow(x)
		require.NoError(t, err)
		for y := 0; y < N; y++ {
			col, err := m.ReadColumn(y)
			require.NoError(t, err)
			v, err := m.Read(x, y)
			require.NoError(t, err)
			require.Equal(t, v, row[y])
			require.Equal(t, v, col[x])
		}
	}
}

// TestWriteRowColumn covers broadcast, short and long sequences.
func TestWriteRowColumn(t *testing.T) {
	m := MustMatrix(t, 4)

	require.NoError(t, m.WriteRowValue(1, true))
	require.Equal(t, "|0000|\n|1111|\n|0000|\n|0000|\n", m.String())

	// short sequence leaves the tail untouched
	require.NoError(t, m.WriteRowSequence(1, []bool{false, true}))
	require.Equal(t, "|0000|\n|0111|\n|0000|\n|0000|\n", m.String())

	// long sequence is truncated
	require.NoError(t, m.WriteColumnSequence(3, []bool{true, false, true, true, true, true}))
	require.Equal(t, "|0001|\n|0110|\n|0001|\n|0001|\n", m.String())

	require.NoError(t, m.WriteColumnValue(0, true))
	col, err := m.ReadColumn(0)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true, true}, col)
}

// TestSelect exercises the tagged index dispatch.
func TestSelect(t *testing.T) {
	m, err := bitmatrix.FromInts([][]int{
		{0, 1, 0},
		{1, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	tests := []struct {
		name string
		ix   bitmatrix.Index
		want []bool
		err  error
	}{
		{"Cell", bitmatrix.Cell(1, 0), []bool{true}, nil},
		{"Row", bitmatrix.Row(1), []bool{true, true, false}, nil},
		{"Column", bitmatrix.Column(2), []bool{false, false, true}, nil},
		{"CellOutOfRange", bitmatrix.Cell(3, 0), nil, bitmatrix.ErrIndexOutOfRange},
		{"RowOutOfRange", bitmatrix.Row(-1), nil, bitmatrix.ErrIndexOutOfRange},
		{"ZeroIndex", bitmatrix.Index{}, nil, bitmatrix.ErrInvalidIndex},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, err := m.Select(tc.ix)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	require.Equal(t, bitmatrix.KindColumn, bitmatrix.Column(0).Kind())
	require.Equal(t, "Row(2)", bitmatrix.Row(2).String())
}

// TestSymmetry covers detection, both repair axes and force-symmetry.
func TestSymmetry(t *testing.T) {
	rows := [][]int{
		{0, 1, 1},
		{0, 0, 0},
		{1, 1, 0},
	}

	m, err := bitmatrix.FromInts(rows)
	require.NoError(t, err)
	require.False(t, m.IsSymmetric())

	up := m.Clone()
	up.MakeSymmetric(bitmatrix.UpperToLower)
	require.True(t, up.IsSymmetric())
	require.Equal(t, "|011|\n|100|\n|100|\n", up.String())

	low := m.Clone()
	low.MakeSymmetric(bitmatrix.LowerToUpper)
	require.True(t, low.IsSymmetric())
	require.Equal(t, "|001|\n|001|\n|110|\n", low.String())

	forced, err := bitmatrix.FromInts(rows, bitmatrix.WithForceSymmetry(true))
	require.NoError(t, err)
	require.True(t, forced.ForceSymmetry())
	require.True(t, forced.Equal(up))

	axis, err := bitmatrix.FromInts(rows,
		bitmatrix.WithForceSymmetry(true), bitmatrix.WithSymmetryAxis(bitmatrix.LowerToUpper))
	require.NoError(t, err)
	require.True(t, axis.Equal(low))
}

// TestForceSymmetryCheckpoints verifies invariants hold at checkpoints only.
func TestForceSymmetryCheckpoints(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		m, err := bitmatrix.FromRows(RandomRows(seed, N), bitmatrix.WithForceSymmetry(true))
		require.NoError(t, err)
		require.True(t, m.IsSymmetric(), "seed %d", seed)

		// ordinary writes are not re-checked
		require.NoError(t, m.Write(0, 1, true))
		require.NoError(t, m.Write(1, 0, false))
		require.False(t, m.IsSymmetric())

		m.Enforce()
		require.True(t, m.IsSymmetric())
		v, err := m.Read(1, 0)
		require.NoError(t, err)
		require.True(t, v)
	}

	m, err := bitmatrix.FromRows(RandomRows(99, N))
	require.NoError(t, err)
	m.SetForceSymmetry(true)
	require.True(t, m.IsSymmetric())
}

// TestSetDiagonal writes both values on the diagonal only.
func TestSetDiagonal(t *testing.T) {
	m := MustMatrix(t, 3)
	m.SetDiagonal(true)
	require.Equal(t, "|100|\n|010|\n|001|\n", m.String())
	require.Equal(t, 3, m.Count())

	require.NoError(t, m.WriteRowValue(0, true))
	m.SetDiagonal(false)
	require.Equal(t, "|011|\n|000|\n|000|\n", m.String())
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := MustMatrix(t, 2)
	require.NoError(t, m.Write(0, 1, true))

	c := m.Clone()
	require.True(t, c.Equal(m))
	require.NoError(t, c.Write(0, 1, false))

	v, err := m.Read(0, 1)
	require.NoError(t, err)
	require.True(t, v)
	require.False(t, c.Equal(m))
	require.False(t, m.Equal(MustMatrix(t, 3)))
	require.False(t, m.Equal(nil))
}

// TestAxisOptionPanics ensures nonsensical axes are rejected at option build time.
func TestAxisOptionPanics(t *testing.T) {
	require.PanicsWithValue(t, bitmatrix.ExportedPanicAxis, func() {
		bitmatrix.WithSymmetryAxis(bitmatrix.Axis(9))
	})
	require.Equal(t, "lower-to-upper", bitmatrix.LowerToUpper.String())
}

// TestSentinelsDistinct ensures no sentinel matches another via errors.Is.
func TestSentinelsDistinct(t *testing.T) {
	sentinels := []error{
		bitmatrix.ErrInvalidSize,
		bitmatrix.ErrIndexOutOfRange,
		bitmatrix.ErrInvalidIndex,
		bitmatrix.ErrDimensionMismatch,
		bitmatrix.ErrInvalidCell,
		bitmatrix.ErrNilMatrix,
		bitmatrix.ErrUnimplemented,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			require.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}
