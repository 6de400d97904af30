// Package service wires the pipeline together for the drivers:
// build the index once, answer queries against it afterwards.
package service

import (
	"sort"

	"detrag/internal/answer"
	"detrag/internal/domain"
	"detrag/internal/index"
	"detrag/internal/search"
)

// Answer is the outcome of one routed query.
type Answer struct {
	Label    int
	Summary  string
	Results  []domain.RetrievalResult
	Rendered string
}

// Pipeline is the build-once/query-many facade over index construction,
// routing, local retrieval and answer formatting.
type Pipeline struct {
	vectorizer domain.Vectorizer
	clusterer  domain.Clusterer
	opts       index.BuildOptions
	idx        *index.Index
}

// NewPipeline creates an unbuilt pipeline from explicit components and
// build options.
func NewPipeline(vectorizer domain.Vectorizer, clusterer domain.Clusterer, opts index.BuildOptions) *Pipeline {
	return &Pipeline{vectorizer: vectorizer, clusterer: clusterer, opts: opts}
}

// Build constructs the index over the given corpus. It is a one-time,
// sequential initialization; the resulting index is read-only.
func (p *Pipeline) Build(docs []domain.Document) error {
	idx, err := index.BuildWith(p.vectorizer, p.clusterer, docs, p.opts)
	if err != nil {
		return err
	}
	p.idx = idx
	return nil
}

// Index exposes the built index; nil before Build.
func (p *Pipeline) Index() *index.Index { return p.idx }

// Communities returns the frozen communities in ascending label order.
func (p *Pipeline) Communities() []domain.Community {
	if p.idx == nil {
		return nil
	}
	out := make([]domain.Community, 0, len(p.idx.Communities))
	for _, com := range p.idx.Communities {
		out = append(out, com)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Label < out[j].Label })
	return out
}

// Query routes the query to one community, ranks its members and renders
// the answer block. Safe for concurrent use once Build has returned.
func (p *Pipeline) Query(query string, topK int) (Answer, error) {
	if p.idx == nil {
		return Answer{}, domain.ErrEmptyIndex
	}
	label, err := search.Route(query, p.idx)
	if err != nil {
		return Answer{}, err
	}
	com := p.idx.Communities[label]
	results, err := search.Retrieve(query, com, p.idx, topK)
	if err != nil {
		return Answer{}, err
	}
	return Answer{
		Label:    label,
		Summary:  com.Summary,
		Results:  results,
		Rendered: answer.Format(query, com, results),
	}, nil
}
