package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/razvp/payments-engine/internal/config"
	"github.com/razvp/payments-engine/internal/csvio"
	"github.com/razvp/payments-engine/internal/engine"
	"github.com/razvp/payments-engine/internal/ledger"
	zaplog "github.com/razvp/payments-engine/internal/zap"
	"github.com/spf13/cobra"
)

// processCmd runs one batch: read transactions, apply them, print balances.
var processCmd = &cobra.Command{
	Use:   "process <input.csv>",
	Short: "Process a transaction file and print the balance report",
	Long: `The process command reads the transaction CSV given as its only argument,
applies every record in order, and prints the final per-client balances to
stdout. Malformed records and rejected transactions are reported on stderr
and never stop the run; the command fails only when the input file itself
cannot be read.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Runtime failures are not usage errors.
		cmd.SilenceUsage = true

		return runProcess(cmd.Context(), args[0])
	},
}

func init() {
	rootCmd.AddCommand(processCmd)
}

func runProcess(ctx context.Context, inputPath string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}

	logger, _, err := zaplog.New(zaplog.Config{
		Environment: zaplog.Environment(cfg.Environment),
		Level:       cfg.LogLevel,
	})
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync(context.WithoutCancel(ctx)) }()

	input, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("cannot open input file %q: %w", inputPath, err)
	}
	defer input.Close()

	registry := ledger.NewRegistry()

	if _, err := engine.Run(ctx, input, registry, logger); err != nil {
		return err
	}

	return csvio.WriteSnapshot(os.Stdout, registry.Snapshot())
}
