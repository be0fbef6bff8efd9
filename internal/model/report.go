package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/couchcryptid/food-freshness/internal/domain"
)

// ClassMetrics holds the held-out evaluation numbers for one label.
type ClassMetrics struct {
	Label     domain.Label
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report is the human-readable evaluation of one training run.
type Report struct {
	RunID     string
	TrainedAt time.Time
	TrainRows int
	TestRows  int
	Accuracy  float64
	Classes   []ClassMetrics
}

// evaluate computes per-class precision/recall/F1 and overall accuracy from
// held-out predictions. yTrue/yPred are class indices into labels.
func evaluate(yTrue, yPred []int, labels []domain.Label) Report {
	n := len(labels)
	confusion := make([][]int, n) // [true][pred]
	for i := range confusion {
		confusion[i] = make([]int, n)
	}

	correct := 0
	for i := range yTrue {
		confusion[yTrue[i]][yPred[i]]++
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	r := Report{TestRows: len(yTrue)}
	if len(yTrue) > 0 {
		r.Accuracy = float64(correct) / float64(len(yTrue))
	}

	for c := 0; c < n; c++ {
		truePos := confusion[c][c]
		support, predicted := 0, 0
		for other := 0; other < n; other++ {
			support += confusion[c][other]
			predicted += confusion[other][c]
		}

		m := ClassMetrics{Label: labels[c], Support: support}
		if predicted > 0 {
			m.Precision = float64(truePos) / float64(predicted)
		}
		if support > 0 {
			m.Recall = float64(truePos) / float64(support)
		}
		if m.Precision+m.Recall > 0 {
			m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
		}
		r.Classes = append(r.Classes, m)
	}
	return r
}

// Format renders the report as the metrics text file.
func (r Report) Format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "training run %s (%s)\n", r.RunID, r.TrainedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "train rows: %d, test rows: %d\n\n", r.TrainRows, r.TestRows)
	fmt.Fprintf(&b, "%-10s %10s %10s %10s %10s\n", "label", "precision", "recall", "f1", "support")
	for _, m := range r.Classes {
		fmt.Fprintf(&b, "%-10s %10.3f %10.3f %10.3f %10d\n", m.Label, m.Precision, m.Recall, m.F1, m.Support)
	}
	fmt.Fprintf(&b, "\naccuracy: %.3f\n", r.Accuracy)
	return b.String()
}

// WriteReport persists the formatted report, creating parent directories.
func (r Report) WriteReport(path string) error {
	return writeText(path, r.Format())
}

func writeText(path, content string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(content), 0o600)
}
