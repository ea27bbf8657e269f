package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"docvault/internal/database"
	"docvault/internal/logging"
	"docvault/internal/status"
)

var errUnknownOutput = errors.New(`--output must be 'yaml' or 'json'`)

func newStatusCmd() *cobra.Command {
	var (
		useEnv bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check the startup files and the data model without serving",
		Long: "Checks that approot.env and the configuration file of its environment are readable,\n" +
			"then connects to the database and verifies the schema.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if output != "" && output != "json" && output != "yaml" {
				return errUnknownOutput
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			ctx := logging.With(cmd.Context(), logging.New("status"))

			checker := status.NewChecker(cfg.BaseDir, database.NewStarter(nil))
			if !useEnv {
				// Read the database settings from the checked configuration file.
				cfg = nil
			}
			res := checker.Report(ctx, cfg)

			if err := printResult(cmd.OutOrStdout(), output, res); err != nil {
				return err
			}
			if res.Status != status.StatusRunning {
				return fmt.Errorf("status: %s", res.Message)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&useEnv, "env", false, "Use the environment configuration instead of the configuration file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "One of 'yaml' or 'json'; a table when empty")
	return cmd
}

func printResult(w io.Writer, output string, res status.Result) error {
	switch output {
	case "":
		tw := table.NewWriter()
		tw.Style().Options.DrawBorder = false
		tw.Style().Options.SeparateColumns = false
		tw.Style().Options.SeparateHeader = false
		tw.AppendHeader(table.Row{"STATUS", "CODE", "MESSAGE"})
		tw.AppendRow(table.Row{res.Status, strconv.Itoa(res.Code), res.Message})
		_, err := fmt.Fprintln(w, tw.Render())
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "yaml":
		out, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshal YAML: %w", err)
		}
		_, err = w.Write(out)
		return err
	}
	return errUnknownOutput
}
