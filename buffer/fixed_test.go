// SPDX-License-Identifier: MIT

// Package buffer_test contains unit tests for the Fixed storage block.
package buffer_test

import (
	"testing"

	"github.com/katalvlaran/lvvec/buffer"
	"github.com/stretchr/testify/require"
)

// TestNewFixedInvalidLength ensures NewFixed rejects non-positive lengths.
func TestNewFixedInvalidLength(t *testing.T) {
	_, err := buffer.NewFixed[int](0)
	require.ErrorIs(t, err, buffer.ErrBadLength)

	_, err = buffer.NewFixed[float64](-3)
	require.ErrorIs(t, err, buffer.ErrBadLength)
}

// TestNewFixedZeroFilled verifies that every element starts at the zero value.
func TestNewFixedZeroFilled(t *testing.T) {
	f, err := buffer.NewFixed[float64](5)
	require.NoError(t, err)
	require.Equal(t, 5, f.Len())
	require.Equal(t, []float64{0, 0, 0, 0, 0}, f.Values())
}

// TestAtSetOutOfRange ensures every checked accessor rejects bad indices.
func TestAtSetOutOfRange(t *testing.T) {
	f, err := buffer.NewFixed[int](2)
	require.NoError(t, err)

	_, err = f.At(-1)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)

	_, err = f.At(2)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)

	err = f.Set(2, 7)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)

	p, err := f.Ref(5)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
	require.Nil(t, p)
}

// TestRefIsLive checks that a pointer from Ref aliases the buffer.
func TestRefIsLive(t *testing.T) {
	f, err := buffer.NewFixed[int](3)
	require.NoError(t, err)

	p, err := f.Ref(1)
	require.NoError(t, err)
	*p = 42

	v, err := f.At(1)
	require.NoError(t, err)
	require.Equal(t, 42, v)
}

// TestCloneIndependence ensures Clone does not share storage.
func TestCloneIndependence(t *testing.T) {
	f, err := buffer.NewFixed[string](2)
	require.NoError(t, err)
	require.NoError(t, f.Set(0, "a"))

	c := f.Clone()
	require.NoError(t, c.Set(0, "b"))

	orig, err := f.At(0)
	require.NoError(t, err)
	require.Equal(t, "a", orig)

	cv, err := c.At(0)
	require.NoError(t, err)
	require.Equal(t, "b", cv)
}

// TestFillCopyFromString covers the bulk helpers and the diagnostic dump.
func TestFillCopyFromString(t *testing.T) {
	f, err := buffer.NewFixed[int](3)
	require.NoError(t, err)

	f.Fill(9)
	require.Equal(t, "[9, 9, 9]", f.String())

	n := f.CopyFrom([]int{1, 2, 3, 4})
	require.Equal(t, 3, n)
	require.Equal(t, "[1, 2, 3]", f.String())

	n = f.CopyFrom([]int{7})
	require.Equal(t, 1, n)
	require.Equal(t, []int{7, 2, 3}, f.Values())
	require.Equal(t, []int{7, 2, 3}, f.View())
}
