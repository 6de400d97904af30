package kmeans

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detrag/internal/domain"
)

// Two tight groups far apart.
var grouped = [][]float64{
	{1.0, 0.0, 0.1},
	{0.9, 0.1, 0.0},
	{1.1, 0.0, 0.0},
	{0.0, 1.0, 0.1},
	{0.1, 0.9, 0.0},
}

func TestInvalidClusterCount(t *testing.T) {
	c := New()
	for _, k := range []int{0, -1, len(grouped) + 1} {
		_, _, err := c.FitPredict(grouped, k, 42)
		assert.ErrorIs(t, err, domain.ErrInvalidClusterCount, "k=%d", k)
	}
}

func TestFitPredictDeterminism(t *testing.T) {
	c := New()
	labels, centers, err := c.FitPredict(grouped, 2, 42)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		l, ce, err := c.FitPredict(grouped, 2, 42)
		require.NoError(t, err)
		require.Equal(t, labels, l)
		require.Equal(t, centers, ce)
	}
}

func TestLabelsInRange(t *testing.T) {
	c := New()
	labels, centers, err := c.FitPredict(grouped, 3, 7)
	require.NoError(t, err)
	require.Len(t, labels, len(grouped))
	require.Len(t, centers, 3)
	for _, l := range labels {
		assert.GreaterOrEqual(t, l, 0)
		assert.Less(t, l, 3)
	}
}

func TestSeparatesObviousGroups(t *testing.T) {
	c := New()
	labels, _, err := c.FitPredict(grouped, 2, 42)
	require.NoError(t, err)
	assert.Equal(t, labels[0], labels[1])
	assert.Equal(t, labels[0], labels[2])
	assert.Equal(t, labels[3], labels[4])
	assert.NotEqual(t, labels[0], labels[3])
}

func TestKEqualsN(t *testing.T) {
	c := New()
	labels, centers, err := c.FitPredict(grouped, len(grouped), 42)
	require.NoError(t, err)
	require.Len(t, centers, len(grouped))
	// Distinct points, k == n: every point gets its own cluster.
	seen := make(map[int]bool)
	for _, l := range labels {
		assert.False(t, seen[l], "label %d assigned twice", l)
		seen[l] = true
	}
}
