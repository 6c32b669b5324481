package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"simgaji/internal/platform/config"
	"simgaji/internal/platform/logger"
)

var dataPath string

var rootCmd = &cobra.Command{
	Use:   "gajictl",
	Short: "Offline tooling for the simgaji payroll data file",
	Long: `gajictl works against the same data file as the simgaji server:
generate the import template, bulk-import workbooks and export records
without going through the HTTP API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()
		cfg := config.Load()
		if dataPath == "" {
			dataPath = cfg.DataPath
		}
		return logger.Setup(cfg.LogLevel, cfg.LogFormat)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "path to the data file (default: DATA_PATH)")
}
