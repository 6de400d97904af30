package domain

// Document is a single corpus entry, supplied once at index-build time.
type Document struct {
	ID   string
	Text string
}

// Community is a cluster of documents plus one frozen representative summary.
// DocIDs, Texts and Vectors are parallel: index i refers to the same document
// in all three. Communities are built once and never mutated.
type Community struct {
	Label   int
	Summary string
	DocIDs  []string
	Texts   []string
	Vectors [][]float64
}

// RetrievalResult is a matching document with its cosine similarity score.
type RetrievalResult struct {
	DocID string
	Text  string
	Score float64
}

// Vectorizer converts text into fixed-dimension feature vectors.
// Fit freezes the vocabulary from the corpus; Transform encodes any later
// text over that frozen vocabulary without growing it.
type Vectorizer interface {
	Fit(corpus []string) error
	Dimension() int
	Transform(texts []string) ([][]float64, error)
}

// Clusterer partitions feature vectors into k clusters. Identical vectors,
// k and seed must yield identical labels and centers on every call.
type Clusterer interface {
	FitPredict(vectors [][]float64, k int, seed int64) (labels []int, centers [][]float64, err error)
}
