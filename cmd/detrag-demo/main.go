// Command detrag-demo runs the pipeline end to end over a fixed corpus:
// build the index, freeze the community summaries, route one query and
// print the formatted answer. Running it twice prints identical output.
package main

import (
	"fmt"
	"log"

	"detrag/internal/answer"
	"detrag/internal/domain"
	"detrag/internal/index"
	"detrag/internal/search"
)

var documents = []domain.Document{
	{ID: "doc-1", Text: "Graph-based retrieval connects entities as nodes and edges to support multi-hop search."},
	{ID: "doc-2", Text: "Multi-hop reasoning can suffer from semantic drift when expansions are not bounded."},
	{ID: "doc-3", Text: "Deterministic pipelines are important for compliance and financial workloads."},
	{ID: "doc-4", Text: "Clustering can group similar documents into stable communities for later retrieval."},
	{ID: "doc-5", Text: "Sampling in large language models introduces randomness into the generated answers."},
}

func main() {
	fmt.Println(">>> Building deterministic index...")
	idx, err := index.Build(documents, index.BuildOptions{
		Clusters: index.DefaultClusters,
		Seed:     index.DefaultSeed,
	})
	if err != nil {
		log.Fatalf("index build failed: %v", err)
	}

	fmt.Println("\n>>> Frozen community summaries:")
	for _, label := range idx.Labels() {
		fmt.Printf("  [Cluster %d] %s\n", label, idx.Communities[label].Summary)
	}

	query := "Why do multi-hop graph systems drift over long chains?"
	fmt.Println("\n>>> Query:", query)

	label, err := search.Route(query, idx)
	if err != nil {
		log.Fatalf("routing failed: %v", err)
	}
	com := idx.Communities[label]
	fmt.Printf("\n>>> Routed to cluster: %d\n", label)
	fmt.Printf("    Summary: %s\n", com.Summary)

	results, err := search.Retrieve(query, com, idx, index.DefaultTopK)
	if err != nil {
		log.Fatalf("retrieval failed: %v", err)
	}

	fmt.Println("\n=== Deterministic Result ===")
	fmt.Println(answer.Format(query, com, results))
}
