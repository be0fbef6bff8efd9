package model

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Summarize renders the model-summary report: the reconstructed feature
// names (numeric passthrough plus encoder categories) and the top feature
// importances, for documentation purposes.
func Summarize(p *Pipeline) string {
	names := p.Encoder.FeatureNames()
	importances := p.Forest.FeatureImportances(len(names))

	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return importances[order[i]] > importances[order[j]]
	})

	var b strings.Builder
	fmt.Fprintf(&b, "model summary for run %s (trained %s)\n", p.RunID, p.TrainedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "classes: %v\n", p.Labels)
	fmt.Fprintf(&b, "features: %d numeric + %d one-hot = %d total\n\n",
		len(p.Encoder.Numeric), len(names)-len(p.Encoder.Numeric), len(names))

	b.WriteString("encoder categories:\n")
	for _, col := range p.Encoder.Categorical {
		fmt.Fprintf(&b, "  %s: %s\n", col, strings.Join(p.Encoder.Categories[col], ", "))
	}

	b.WriteString("\ntop features by importance:\n")
	topN := min(10, len(order))
	for rank := 0; rank < topN; rank++ {
		i := order[rank]
		fmt.Fprintf(&b, "  %2d. %s: %.4f\n", rank+1, names[i], importances[i])
	}

	b.WriteString("\nFeatures ranked above are the ones the forest splits on most when\n")
	b.WriteString("separating Fresh/Medium/Spoiled. Expect the time features and the\n")
	b.WriteString("strong categorical indicators (refrigeration, smell descriptors,\n")
	b.WriteString("wet moisture) to dominate.\n")
	return b.String()
}

// WriteSummary persists the summary report, creating parent directories.
func WriteSummary(p *Pipeline, path string) error {
	return writeText(path, Summarize(p))
}
