package main

import (
	"fmt"
	"strings"

	"money-tracker/internal/config"
	"money-tracker/internal/taxonomy"

	"github.com/spf13/cobra"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Predict the label and amount of a line without storing it",
		Example: `  moneyd classify petrol 1000
  moneyd classify "bike emi 1600"`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	registry := taxonomy.Default()
	labelClassifier, extractor := loadModels(cfg, registry)

	text := strings.Join(args, " ")
	label := labelClassifier.Predict(text)
	category, subCategory, err := taxonomy.Decompose(label)
	if err != nil {
		return fmt.Errorf("model predicted an unusable label: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "category:     %s\n", category)
	fmt.Fprintf(out, "sub_category: %s\n", subCategory)
	fmt.Fprintf(out, "amount:       %s\n", extractor.Extract(text).StringFixed(2))

	model := labelClassifier.Snapshot()
	if model == nil {
		fmt.Fprintln(out, "note: no label model loaded, run `moneyd train` first")
		return nil
	}
	if score, ok := model.Scores(text)[label]; ok {
		fmt.Fprintf(out, "score:        %.4f\n", score)
	}
	return nil
}
