// Package index builds the immutable composite the whole pipeline queries:
// a fitted vectorizer, one center per cluster label, and the map from label
// to community. The index is built once and read-only afterwards, so
// concurrent queries need no synchronization.
package index

import (
	"fmt"

	"detrag/internal/cluster/kmeans"
	"detrag/internal/community"
	"detrag/internal/domain"
	"detrag/internal/embedding/tfidf"
)

// Defaults for the pipeline's configuration surface.
const (
	DefaultClusters = 2
	DefaultTopK     = 3
	DefaultSeed     = 42
)

// Index is the build-once/read-many composite of the fitted vectorizer,
// the per-label cluster centers and the communities. Centers is indexed by
// label directly; Communities holds exactly the labels that received at
// least one document.
type Index struct {
	Vectorizer  domain.Vectorizer
	Centers     [][]float64
	Communities map[int]domain.Community
}

// BuildOptions is the pipeline's configuration surface. The zero value for
// Clusters falls back to DefaultClusters; the seed is used as given.
type BuildOptions struct {
	Clusters int
	Seed     int64
}

// Build constructs an index with the default TF-IDF vectorizer and k-means
// clusterer.
func Build(docs []domain.Document, opts BuildOptions) (*Index, error) {
	return BuildWith(tfidf.New(), kmeans.New(), docs, opts)
}

// BuildWith constructs an index from explicit vectorizer and clusterer
// implementations, so the numeric engine is swappable without touching
// routing or retrieval.
func BuildWith(vectorizer domain.Vectorizer, clusterer domain.Clusterer, docs []domain.Document, opts BuildOptions) (*Index, error) {
	clusters := opts.Clusters
	if clusters == 0 {
		clusters = DefaultClusters
	}
	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}
	if err := vectorizer.Fit(texts); err != nil {
		return nil, fmt.Errorf("fit vectorizer: %w", err)
	}
	vectors, err := vectorizer.Transform(texts)
	if err != nil {
		return nil, fmt.Errorf("vectorize corpus: %w", err)
	}
	labels, centers, err := clusterer.FitPredict(vectors, clusters, opts.Seed)
	if err != nil {
		return nil, fmt.Errorf("cluster corpus: %w", err)
	}
	return &Index{
		Vectorizer:  vectorizer,
		Centers:     centers,
		Communities: community.Build(docs, vectors, labels, centers),
	}, nil
}

// Labels returns the community labels in ascending order.
func (idx *Index) Labels() []int {
	labels := make([]int, 0, len(idx.Communities))
	for label := range idx.Centers {
		if _, ok := idx.Communities[label]; ok {
			labels = append(labels, label)
		}
	}
	return labels
}
