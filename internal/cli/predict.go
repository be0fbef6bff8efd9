package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/couchcryptid/food-freshness/internal/domain"
	"github.com/couchcryptid/food-freshness/internal/observability"
	"github.com/couchcryptid/food-freshness/internal/predict"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Score one sample with the trained model",
		Long: "Score a single cooked-food storage scenario. Features come from flags,\n" +
			"or from a JSON object piped via stdin with --stdin.",
		Run: runPredict,
	}

	cmd.Flags().StringP("model", "m", "", "Model artifact path (default: $MODEL_PATH)")
	cmd.Flags().Bool("stdin", false, "Read the sample as a JSON object from stdin")
	for _, col := range domain.TrainedFeatures() {
		cmd.Flags().String(col, "", "Sample feature "+col)
	}

	RootCmd.AddCommand(cmd)
}

func runPredict(cmd *cobra.Command, _ []string) {
	cfg, logger := setup()

	modelPath := flagOrDefault(cmd, "model", cfg.ModelPath)
	predictor, err := predict.LoadPredictor(modelPath, logger, observability.NewMetrics())
	if err != nil {
		exitErr("load model", err)
	}

	sample, err := readSample(cmd)
	if err != nil {
		exitErr("read sample", err)
	}

	label, probs, err := predictor.Predict(sample)
	if err != nil {
		exitErr("predict", err)
	}

	out := struct {
		Label         domain.Label             `json:"label"`
		Probabilities map[domain.Label]float64 `json:"probabilities"`
	}{Label: label, Probabilities: probs}

	b, _ := json.Marshal(out)
	fmt.Println(string(b))
}

func readSample(cmd *cobra.Command) (predict.Sample, error) {
	if fromStdin, _ := cmd.Flags().GetBool("stdin"); fromStdin {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		var sample predict.Sample
		if err := json.Unmarshal(b, &sample); err != nil {
			return nil, fmt.Errorf("parse sample JSON: %w", err)
		}
		return sample, nil
	}

	sample := make(predict.Sample, len(domain.TrainedFeatures()))
	for _, col := range domain.TrainedFeatures() {
		if v, _ := cmd.Flags().GetString(col); v != "" {
			sample[col] = v
		}
	}
	return sample, nil
}
