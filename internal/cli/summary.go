package cli

import (
	"fmt"

	"github.com/couchcryptid/food-freshness/internal/model"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Write the model summary report",
		Long: "Load the trained model artifact and write a human-readable summary of\n" +
			"its feature space and feature importances.",
		Run: runSummary,
	}

	cmd.Flags().StringP("model", "m", "", "Model artifact path (default: $MODEL_PATH)")
	cmd.Flags().StringP("out", "o", "", "Summary path (default: $SUMMARY_REPORT_PATH)")
	cmd.Flags().Bool("stdout", false, "Print the summary instead of writing the file")

	RootCmd.AddCommand(cmd)
}

func runSummary(cmd *cobra.Command, _ []string) {
	cfg, _ := setup()

	modelPath := flagOrDefault(cmd, "model", cfg.ModelPath)
	outPath := flagOrDefault(cmd, "out", cfg.SummaryReportPath)

	p, err := model.Load(modelPath)
	if err != nil {
		exitErr("load model", err)
	}

	if toStdout, _ := cmd.Flags().GetBool("stdout"); toStdout {
		fmt.Print(model.Summarize(p))
		return
	}

	if err := model.WriteSummary(p, outPath); err != nil {
		exitErr("write summary", err)
	}
	fmt.Printf("summary for run %s written to %s\n", p.RunID, outPath)
}
