package random_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/onflow/devrand/model/device"
	"github.com/onflow/devrand/model/shape"
	"github.com/onflow/devrand/module/random"
)

func TestDefaultSampler(t *testing.T) {
	previous := random.SetDefault(nil)
	t.Cleanup(func() { random.SetDefault(previous) })

	first := random.Default()
	require.NotNil(t, first)
	assert.Same(t, first, random.Default())

	values, err := random.Randint(random.RangeBound{Low: 10, High: 20}, shape.Of(3))
	require.NoError(t, err)
	for _, v := range values.Get() {
		assert.GreaterOrEqual(t, v, int64(10))
		assert.Less(t, v, int64(20))
	}
	assert.Equal(t, device.DefaultSelector.CurrentDevice(), values.Device())

	values, err = random.RandomIntegers(random.SingleBound{N: 6}, shape.Of(50))
	require.NoError(t, err)
	for _, v := range values.Get() {
		assert.GreaterOrEqual(t, v, int64(1))
		assert.LessOrEqual(t, v, int64(6))
	}

	_, err = random.Randint(random.SingleBound{N: 0}, nil)
	assert.True(t, random.IsInvalidRangeError(err))
}

func TestSetDefault(t *testing.T) {
	seeded := newTestSampler(device.Fixed(0), random.WithSeed([]byte("default")))
	reference := newTestSampler(device.Fixed(0), random.WithSeed([]byte("default")))

	previous := random.SetDefault(seeded)
	t.Cleanup(func() { random.SetDefault(previous) })
	assert.Same(t, seeded, random.Default())

	got, err := random.Randint(random.SingleBound{N: 1 << 30}, shape.Of(8))
	require.NoError(t, err)
	expected, err := reference.Randint(random.SingleBound{N: 1 << 30}, shape.Of(8))
	require.NoError(t, err)
	assert.Equal(t, expected.Get(), got.Get())

	require.NoError(t, random.Seed([]byte("again")))
	require.NoError(t, reference.Seed([]byte("again")))
	got, err = random.RandomIntegers(random.SingleBound{N: 1 << 30}, nil)
	require.NoError(t, err)
	expected, err = reference.RandomIntegers(random.SingleBound{N: 1 << 30}, nil)
	require.NoError(t, err)
	assert.Equal(t, expected.Get(), got.Get())

	random.ResetStates()
	assert.Zero(t, seeded.Registry().Len())
}
