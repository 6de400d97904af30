package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"detrag/internal/cluster/kmeans"
	"detrag/internal/domain"
	"detrag/internal/embedding/tfidf"
	"detrag/internal/index"
)

var docs = []domain.Document{
	{ID: "doc-1", Text: "Graph-based retrieval connects entities as nodes and edges to support multi-hop search."},
	{ID: "doc-2", Text: "Multi-hop reasoning can suffer from semantic drift when expansions are not bounded."},
	{ID: "doc-3", Text: "Deterministic pipelines are important for compliance and financial workloads."},
	{ID: "doc-4", Text: "Clustering can group similar documents into stable communities for later retrieval."},
	{ID: "doc-5", Text: "Sampling in large language models introduces randomness into the generated answers."},
}

func newPipeline() *Pipeline {
	return NewPipeline(tfidf.New(), kmeans.New(), index.BuildOptions{Clusters: 2, Seed: 42})
}

func TestQueryBeforeBuild(t *testing.T) {
	_, err := newPipeline().Query("anything", 3)
	assert.ErrorIs(t, err, domain.ErrEmptyIndex)
}

func TestBuildThenQuery(t *testing.T) {
	p := newPipeline()
	require.NoError(t, p.Build(docs))

	ans, err := p.Query("Why do multi-hop graph systems drift over long chains?", 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(ans.Results), 3)
	assert.NotEmpty(t, ans.Results)
	assert.True(t, strings.HasPrefix(ans.Rendered, "[community_summary] "+ans.Summary))
	assert.Equal(t, p.Index().Communities[ans.Label].Summary, ans.Summary)
}

func TestQueryIsRepeatable(t *testing.T) {
	p := newPipeline()
	require.NoError(t, p.Build(docs))

	first, err := p.Query("stable communities", 3)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		ans, err := p.Query("stable communities", 3)
		require.NoError(t, err)
		require.Equal(t, first, ans)
	}
}

func TestCommunitiesAreSortedAndComplete(t *testing.T) {
	p := newPipeline()
	assert.Nil(t, p.Communities())

	require.NoError(t, p.Build(docs))
	communities := p.Communities()
	require.NotEmpty(t, communities)
	total := 0
	for i, com := range communities {
		if i > 0 {
			assert.Greater(t, com.Label, communities[i-1].Label)
		}
		total += len(com.DocIDs)
	}
	assert.Equal(t, len(docs), total)
}
