// Package cmd defines the engine's CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile is the path to the optional configuration file.
var cfgFile string

// logLevel overrides the configured log level when set.
var logLevel string

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "engine",
	Short: "Batch payments engine with dispute/resolve/chargeback semantics",
	Long: `engine ingests an ordered CSV stream of account transactions, maintains a
per-client balance ledger with dispute lifecycle semantics, and prints the
final balances as CSV on stdout. Diagnostics go to stderr so the report can
be piped or redirected cleanly.`,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to the configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")
}
