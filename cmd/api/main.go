// Package main is the entry point of the docvault server.
package main

import (
	"context"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagBaseDir  string
)

var rootCmd = &cobra.Command{
	Use:          "docvault",
	Short:        "Serve documents attached to object fields",
	SilenceUsage: true,
	RunE:         runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagLogLevel, "log-level", "l", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagBaseDir, "base-dir", "", "Directory holding approot.env (overrides APP_BASE_DIR)")
	rootCmd.Flags().BoolVar(&flagCheck, "check", false, "Run the startup checks before serving")

	rootCmd.AddCommand(newStatusCmd())
}

// @title Document Vault API
// @version 1.0
// @description Stores documents attached to object fields and serves them for display and download.
// @BasePath /
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
