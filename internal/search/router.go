// Package search routes queries to a single community and ranks members
// within it. Both operations are pure functions of their inputs and never
// mutate the index, so concurrent queries need no coordination.
package search

import (
	"math"

	"detrag/internal/distance"
	"detrag/internal/domain"
	"detrag/internal/index"
)

// Route encodes the query with the index's vectorizer and returns the label
// of the community whose center has maximum cosine similarity to it. Exact
// ties go to the smallest label. Labels without a community (empty clusters)
// are never routed to. Returns domain.ErrEmptyIndex when the index holds no
// communities.
func Route(query string, idx *index.Index) (int, error) {
	if len(idx.Communities) == 0 {
		return 0, domain.ErrEmptyIndex
	}
	vecs, err := idx.Vectorizer.Transform([]string{query})
	if err != nil {
		return 0, err
	}
	q := vecs[0]
	bestLabel := 0
	bestSim := math.Inf(-1)
	for label, center := range idx.Centers {
		if _, ok := idx.Communities[label]; !ok {
			continue
		}
		if sim := distance.Cosine(q, center); sim > bestSim {
			bestSim = sim
			bestLabel = label
		}
	}
	return bestLabel, nil
}
