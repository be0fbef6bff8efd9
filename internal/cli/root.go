// Package cli implements the freshness pipeline commands.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/couchcryptid/food-freshness/internal/config"
	"github.com/couchcryptid/food-freshness/internal/observability"
	"github.com/spf13/cobra"
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "freshness",
	Short: "Cooked-food freshness demo pipeline",
	Long: "An educational pipeline that synthesizes labeled cooked-food storage data,\n" +
		"trains a freshness classifier, and serves predictions.",
}

// setup loads configuration and builds the process logger. Configuration
// comes from environment variables; individual commands layer flags on top.
func setup() (*config.Config, *slog.Logger) {
	cfg, err := config.Load()
	if err != nil {
		exitErr("load config", err)
	}
	return cfg, observability.NewLogger(cfg)
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
