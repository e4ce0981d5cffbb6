package array_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/devrand/model/array"
	"github.com/onflow/devrand/model/shape"
)

func TestNew(t *testing.T) {
	a, err := array.New(1, shape.Of(2, 2), []int64{1, 2, 3, 4})
	require.NoError(t, err)
	assert.Equal(t, 4, a.Size())
	assert.Equal(t, shape.Of(2, 2), a.Shape())
	assert.EqualValues(t, 1, a.Device())

	_, err = array.New(1, shape.Of(2, 2), []int64{1, 2, 3})
	require.Error(t, err)

	_, err = array.New(1, shape.Of(-2), nil)
	require.True(t, shape.IsInvalidShapeError(err))
}

func TestGetReturnsHostCopy(t *testing.T) {
	a, err := array.New(0, shape.Of(3), []int64{7, 8, 9})
	require.NoError(t, err)

	host := a.Get()
	host[0] = 100
	assert.Equal(t, []int64{7, 8, 9}, a.Get())
}

func TestItem(t *testing.T) {
	a, err := array.New(0, shape.Scalar, []int64{42})
	require.NoError(t, err)
	v, err := a.Item()
	require.NoError(t, err)
	assert.EqualValues(t, 42, v)

	z, err := array.Zeros(0, shape.Of(2))
	require.NoError(t, err)
	_, err = z.Item()
	require.Error(t, err)
}

func TestShift(t *testing.T) {
	t.Run("regular offset", func(t *testing.T) {
		a, err := array.New(0, shape.Of(3), []int64{0, 1, 2})
		require.NoError(t, err)
		shifted := a.Shift(-5)
		assert.Equal(t, []int64{-5, -4, -3}, shifted.Get())
		// the source array is left untouched
		assert.Equal(t, []int64{0, 1, 2}, a.Get())
	})

	t.Run("wrapping raw values over the full 64-bit span", func(t *testing.T) {
		// raw draw of 2^64-1 stored as int64(-1), shifted by MinInt64 is MaxInt64
		a, err := array.New(0, shape.Of(2), []int64{-1, 0})
		require.NoError(t, err)
		shifted := a.Shift(math.MinInt64)
		assert.Equal(t, []int64{math.MaxInt64, math.MinInt64}, shifted.Get())
	})
}

func TestMarshalJSON(t *testing.T) {
	cases := []struct {
		name     string
		shape    shape.Shape
		values   []int64
		expected string
	}{
		{"scalar", shape.Scalar, []int64{3}, `3`},
		{"zero-dim", shape.Of(), []int64{3}, `3`},
		{"vector", shape.Of(3), []int64{1, 2, 3}, `[1,2,3]`},
		{"matrix", shape.Of(2, 3), []int64{1, 2, 3, 4, 5, 6}, `[[1,2,3],[4,5,6]]`},
		{"empty axis", shape.Of(2, 0), []int64{}, `[[],[]]`},
		{"three axes", shape.Of(1, 2, 1), []int64{8, 9}, `[[[8],[9]]]`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := array.New(0, c.shape, c.values)
			require.NoError(t, err)
			encoded, err := json.Marshal(a)
			require.NoError(t, err)
			assert.JSONEq(t, c.expected, string(encoded))
		})
	}
}
