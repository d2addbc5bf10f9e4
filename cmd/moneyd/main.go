package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"money-tracker/internal/config"
	"money-tracker/internal/logging"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "moneyd",
		Short: "Personal finance tracker that turns free-text lines into categorized transactions",
		Long: `moneyd logs transactions such as "petrol 1000" by extracting the amount and
predicting a category|sub-category label. Corrections made by the owner are
fed back to the classifier so it keeps learning.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}
)

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.PersistentFlags().String("log-format", "", "log format (text, json); overrides LOG_FORMAT")

	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(trainCmd())
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(classifyCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Info("received interrupt signal, shutting down gracefully")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig sets up logging. Flags win over LOG_LEVEL and LOG_FORMAT, which
// win over the defaults in internal/config.
func initConfig(_ *cobra.Command, _ []string) error {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := config.Load().Log
	viper.SetDefault("log.level", defaults.Level)
	viper.SetDefault("log.format", defaults.Format)

	format := strings.ToLower(viper.GetString("log.format"))
	if format != "text" && format != "json" {
		return fmt.Errorf("invalid log format: %s", format)
	}

	logging.Setup(logging.FromStrings(viper.GetString("log.level"), format))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "moneyd %s\n", version)
		},
	}
}
