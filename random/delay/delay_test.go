package delay_test

import (
	"testing"
	"time"

	"github.com/mkeeler/hexload/random/delay"
	"github.com/mkeeler/hexload/random/options"
	"github.com/stretchr/testify/require"
)

func TestGenerator_SeedIsDeterministic(t *testing.T) {
	g := delay.NewDefaultGenerator()

	g.Seed(4242)
	first := []int{g.Draw(), g.Draw(), g.Draw()}

	g.Seed(4242)
	second := []int{g.Draw(), g.Draw(), g.Draw()}

	require.Equal(t, first, second)

	other := delay.NewDefaultGenerator(options.WithSeed(4242))
	require.Equal(t, first[0], other.Draw())
}

func TestGenerator_DrawRange(t *testing.T) {
	g, err := delay.NewGenerator(1, 11, time.Second, options.WithSeed(7))
	require.NoError(t, err)

	for i := 0; i < 1000; i++ {
		v := g.Draw()
		require.GreaterOrEqual(t, v, 1)
		require.Less(t, v, 11)
	}

	require.Equal(t, 3*time.Second, g.Duration(3))
}

func TestGenerator_DefaultRange(t *testing.T) {
	g := delay.NewDefaultGenerator(options.WithSeed(1))
	for i := 0; i < 1000; i++ {
		v := g.Draw()
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 10000)
	}
	require.Equal(t, 25*time.Millisecond, g.Duration(25))
}

func TestNewGenerator_Invalid(t *testing.T) {
	type testcase struct {
		min  int
		max  int
		unit time.Duration
	}

	testcases := map[string]testcase{
		"negative minimum": {min: -1, max: 10, unit: time.Millisecond},
		"empty range":      {min: 5, max: 5, unit: time.Millisecond},
		"inverted range":   {min: 10, max: 5, unit: time.Millisecond},
		"zero unit":        {min: 0, max: 5, unit: 0},
	}

	for name, tc := range testcases {
		t.Run(name, func(t *testing.T) {
			_, err := delay.NewGenerator(tc.min, tc.max, tc.unit)
			require.Error(t, err)
		})
	}
}
