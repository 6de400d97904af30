// Package community derives frozen document communities from cluster output.
package community

import (
	"math"

	"detrag/internal/distance"
	"detrag/internal/domain"
)

// Build groups documents by cluster label and freezes one representative
// summary per community: the verbatim text of the member whose vector is
// most similar to the cluster center. Exact similarity ties go to the
// earliest document in corpus order. Labels with no members get no
// community. Member order within a community preserves corpus order, so
// the result is a pure function of its inputs.
func Build(docs []domain.Document, vectors [][]float64, labels []int, centers [][]float64) map[int]domain.Community {
	communities := make(map[int]domain.Community)
	for label := range centers {
		var ids, texts []string
		var members [][]float64
		for i, l := range labels {
			if l != label {
				continue
			}
			ids = append(ids, docs[i].ID)
			texts = append(texts, docs[i].Text)
			members = append(members, vectors[i])
		}
		if len(ids) == 0 {
			continue
		}
		best := 0
		bestSim := math.Inf(-1)
		for i, vec := range members {
			if sim := distance.Cosine(centers[label], vec); sim > bestSim {
				bestSim = sim
				best = i
			}
		}
		communities[label] = domain.Community{
			Label:   label,
			Summary: texts[best],
			DocIDs:  ids,
			Texts:   texts,
			Vectors: members,
		}
	}
	return communities
}
