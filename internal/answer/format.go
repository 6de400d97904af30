// Package answer renders the final answer block.
package answer

import (
	"fmt"
	"strings"

	"detrag/internal/domain"
)

// Format renders the community summary, the ranked matches and the original
// query into a fixed layout. A real system might substitute a generative
// model call here under zero-temperature settings; this stays purely
// symbolic so the output carries no hidden randomness.
func Format(query string, com domain.Community, results []domain.RetrievalResult) string {
	var b strings.Builder
	b.WriteString("[community_summary] ")
	b.WriteString(com.Summary)
	b.WriteString("\n\nTop matches:\n")
	for _, r := range results {
		fmt.Fprintf(&b, "- (%.3f) %s: %s\n", r.Score, r.DocID, r.Text)
	}
	b.WriteString("\nUser query: ")
	b.WriteString(query)
	return b.String()
}
