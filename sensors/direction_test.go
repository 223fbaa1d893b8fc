package sensors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectionLabels(t *testing.T) {
	want := []string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
		"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}
	seen := map[string]bool{}
	for i, w := range want {
		l := Direction(i).Label()
		assert.Equal(t, w, l)
		assert.LessOrEqual(t, len(l), 3)
		assert.False(t, seen[l], "duplicate label %v", l)
		seen[l] = true
	}
	assert.Len(t, seen, DirectionCount)
}

func TestUnknownLabel(t *testing.T) {
	assert.Equal(t, "ERR", Unknown.Label())
	assert.Equal(t, "ERR", Unknown.String())
	assert.Equal(t, "ERR", Direction(200).Label())
}

func TestDegrees(t *testing.T) {
	d, ok := N.Degrees()
	require.True(t, ok)
	assert.Equal(t, 0.0, d)

	d, ok = E.Degrees()
	require.True(t, ok)
	assert.Equal(t, 90.0, d)

	d, ok = NNW.Degrees()
	require.True(t, ok)
	assert.Equal(t, 337.5, d)

	_, ok = Unknown.Degrees()
	assert.False(t, ok)
}

func TestParseDirection(t *testing.T) {
	for i := 0; i < DirectionCount; i++ {
		d, err := ParseDirection(Direction(i).Label())
		require.NoError(t, err)
		assert.Equal(t, Direction(i), d)
	}
	d, err := ParseDirection(" wsw ")
	require.NoError(t, err)
	assert.Equal(t, WSW, d)

	_, err = ParseDirection("ERR")
	assert.Error(t, err)
}
