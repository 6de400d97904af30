package search

import (
	"sort"

	"detrag/internal/distance"
	"detrag/internal/domain"
	"detrag/internal/index"
)

// Retrieve scores every member of the community against the query and
// returns the top results in descending score order. The sort is stable:
// equal scores keep the community's member order. topK values at or below
// zero yield an empty result, and topK beyond the member count is cut to
// it. The community must have been built by the same index the query is
// encoded with.
func Retrieve(query string, com domain.Community, idx *index.Index, topK int) ([]domain.RetrievalResult, error) {
	if topK <= 0 {
		return nil, nil
	}
	vecs, err := idx.Vectorizer.Transform([]string{query})
	if err != nil {
		return nil, err
	}
	q := vecs[0]
	results := make([]domain.RetrievalResult, len(com.DocIDs))
	for i := range com.DocIDs {
		results[i] = domain.RetrievalResult{
			DocID: com.DocIDs[i],
			Text:  com.Texts[i],
			Score: distance.Cosine(q, com.Vectors[i]),
		}
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}
