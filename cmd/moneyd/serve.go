package main

import (
	"fmt"
	"log/slog"

	"money-tracker/internal/amount"
	"money-tracker/internal/classifier"
	"money-tracker/internal/config"
	"money-tracker/internal/database"
	"money-tracker/internal/server"
	"money-tracker/internal/taxonomy"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Open the database, load the label and amount models and serve the API.

A missing model is not fatal: predictions fall back to the default label and
amounts to pattern extraction until a model is trained. With MODEL_WATCH=true
the label model is reloaded whenever its file is replaced.`,
		RunE: runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Warn("failed to close database", slog.String("error", err.Error()))
		}
	}()

	registry := taxonomy.Default()
	labelClassifier, extractor := loadModels(cfg, registry)

	ctx := cmd.Context()
	if cfg.Model.Watch {
		go func() {
			if err := labelClassifier.Watch(ctx); err != nil {
				slog.Warn("model watcher stopped", slog.String("error", err.Error()))
			}
		}()
	}

	srv := server.New(cfg, server.Dependencies{
		DB:         db.DB,
		Registry:   registry,
		Classifier: labelClassifier,
		Extractor:  extractor,
	})

	return srv.Run(ctx)
}

// loadModels never fails; absent artifacts leave the components degraded.
func loadModels(cfg *config.Config, registry *taxonomy.Registry) (*classifier.LabelClassifier, *amount.Extractor) {
	labelClassifier := classifier.NewLabelClassifier(registry, classifier.NewFileStore(cfg.Model.Path))

	tokenModel, ok := amount.LoadTokenModel(cfg.Model.AmountPath)
	if !ok {
		return labelClassifier, amount.NewExtractor(nil)
	}
	return labelClassifier, amount.NewExtractor(tokenModel)
}
