package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"money-tracker/internal/classifier"
	"money-tracker/internal/config"
	"money-tracker/internal/taxonomy"
	"money-tracker/internal/training"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func trainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Train the label and amount models from a corpus",
		Long: `Fit a fresh label model and amount model and save them to MODEL_PATH and
AMOUNT_MODEL_PATH. Without --corpus the built-in seed corpus is used.

Training replaces the served model, including everything it learned from
corrections. A running server started with MODEL_WATCH=true picks the new
model up without a restart.`,
		RunE: runTrain,
	}

	cmd.Flags().String("corpus", "", "TOML corpus file with [[example]] text/label entries")
	cmd.Flags().Int("epochs", 0, "training passes over the corpus (default TRAIN_EPOCHS)")
	cmd.Flags().Uint64("seed", 0, "shuffle seed (default TRAIN_SEED)")
	cmd.Flags().Bool("no-progress", false, "do not draw a progress bar")

	return cmd
}

func runTrain(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()

	corpusPath, _ := cmd.Flags().GetString("corpus")
	epochs, _ := cmd.Flags().GetInt("epochs")
	seed, _ := cmd.Flags().GetUint64("seed")
	noProgress, _ := cmd.Flags().GetBool("no-progress")

	corpus, err := loadCorpus(corpusPath)
	if err != nil {
		return err
	}

	opts := training.DefaultOptions()
	opts.Epochs = cfg.Model.TrainEpochs
	opts.Seed = cfg.Model.TrainSeed
	if cmd.Flags().Changed("epochs") {
		opts.Epochs = epochs
	}
	if cmd.Flags().Changed("seed") {
		opts.Seed = seed
	}

	if !noProgress {
		bar := progressbar.NewOptions(opts.Epochs,
			progressbar.OptionSetWriter(cmd.ErrOrStderr()),
			progressbar.OptionShowCount(),
			progressbar.OptionShowElapsedTimeOnFinish(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Training label model"),
		)
		opts.OnEpoch = func(_, _ int) {
			_ = bar.Add(1)
		}
		defer func() { _ = bar.Finish() }()
	}

	slog.Info("training started",
		slog.Int("examples", len(corpus.Examples)),
		slog.Int("epochs", opts.Epochs),
		slog.Uint64("seed", opts.Seed),
	)
	start := time.Now()

	model, err := training.FitLabelModel(corpus, taxonomy.Default(), opts)
	if err != nil {
		return fmt.Errorf("failed to train label model: %w", err)
	}
	if err := classifier.NewFileStore(cfg.Model.Path).Save(model); err != nil {
		return fmt.Errorf("failed to save label model: %w", err)
	}

	tokenModel, err := training.FitAmountModel(corpus)
	if err != nil {
		return fmt.Errorf("failed to train amount model: %w", err)
	}
	if err := tokenModel.Save(cfg.Model.AmountPath); err != nil {
		return fmt.Errorf("failed to save amount model: %w", err)
	}

	slog.Info("training finished",
		slog.Int("labels", len(model.Labels)),
		slog.Int("vocabulary", model.Transform.Size()),
		slog.String("label_model", cfg.Model.Path),
		slog.String("amount_model", cfg.Model.AmountPath),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

func loadCorpus(path string) (*training.Corpus, error) {
	if path == "" {
		return training.DefaultCorpus(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open corpus: %w", err)
	}
	defer f.Close()

	corpus, err := training.LoadCorpus(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load corpus %s: %w", path, err)
	}
	return corpus, nil
}
