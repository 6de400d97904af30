package community

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detrag/internal/domain"
)

var docs = []domain.Document{
	{ID: "doc-1", Text: "first"},
	{ID: "doc-2", Text: "second"},
	{ID: "doc-3", Text: "third"},
}

func TestBuildGroupsByLabelInCorpusOrder(t *testing.T) {
	vectors := [][]float64{{1, 0}, {0, 1}, {0.9, 0.1}}
	labels := []int{0, 1, 0}
	centers := [][]float64{{1, 0}, {0, 1}}

	communities := Build(docs, vectors, labels, centers)
	require.Len(t, communities, 2)

	com := communities[0]
	assert.Equal(t, 0, com.Label)
	assert.Equal(t, []string{"doc-1", "doc-3"}, com.DocIDs)
	assert.Equal(t, []string{"first", "third"}, com.Texts)
	assert.Equal(t, [][]float64{{1, 0}, {0.9, 0.1}}, com.Vectors)
	// doc-1 sits exactly on the center
	assert.Equal(t, "first", com.Summary)

	assert.Equal(t, []string{"doc-2"}, communities[1].DocIDs)
	assert.Equal(t, "second", communities[1].Summary)
}

func TestBuildSkipsEmptyLabels(t *testing.T) {
	vectors := [][]float64{{1, 0}, {1, 0}, {1, 0}}
	labels := []int{0, 0, 0}
	centers := [][]float64{{1, 0}, {0, 1}, {0, 0}}

	communities := Build(docs, vectors, labels, centers)
	require.Len(t, communities, 1)
	_, ok := communities[1]
	assert.False(t, ok)
	_, ok = communities[2]
	assert.False(t, ok)
}

func TestSummaryTieGoesToEarliestDocument(t *testing.T) {
	// Identical vectors: every member ties on similarity to the center.
	vectors := [][]float64{{1, 1}, {1, 1}, {1, 1}}
	labels := []int{0, 0, 0}
	centers := [][]float64{{1, 1}}

	communities := Build(docs, vectors, labels, centers)
	require.Len(t, communities, 1)
	assert.Equal(t, "first", communities[0].Summary)
}

func TestBuildIsDeterministic(t *testing.T) {
	vectors := [][]float64{{1, 0}, {0, 1}, {0.5, 0.5}}
	labels := []int{0, 1, 1}
	centers := [][]float64{{1, 0}, {0.25, 0.75}}

	first := Build(docs, vectors, labels, centers)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Build(docs, vectors, labels, centers))
	}
}
