package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/food-freshness/internal/adapter/httpapi"
	"github.com/couchcryptid/food-freshness/internal/observability"
	"github.com/couchcryptid/food-freshness/internal/predict"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve predictions over HTTP",
		Long: "Load the trained model and serve the prediction form, the JSON API,\n" +
			"and the health, readiness, and metrics endpoints.",
		Run: runServe,
	}

	cmd.Flags().StringP("model", "m", "", "Model artifact path (default: $MODEL_PATH)")
	cmd.Flags().String("addr", "", "Listen address (default: $HTTP_ADDR)")

	RootCmd.AddCommand(cmd)
}

func runServe(cmd *cobra.Command, _ []string) {
	cfg, logger := setup()
	metrics := observability.NewMetrics()

	modelPath := flagOrDefault(cmd, "model", cfg.ModelPath)
	addr := flagOrDefault(cmd, "addr", cfg.HTTPAddr)

	predictor, err := predict.LoadPredictor(modelPath, logger, metrics)
	if err != nil {
		exitErr("load model", err)
	}
	metrics.ModelLoaded.Set(1)

	srv := httpapi.NewServer(addr, predictor, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			exitErr("http server", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down", "timeout", cfg.ShutdownTimeout)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			exitErr("shutdown", err)
		}
	}
}
