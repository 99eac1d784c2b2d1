package main

import (
	"encoding/json"
	"fmt"

	"github.com/ddcalc/investment-calculator/internal/calculation"
	"github.com/ddcalc/investment-calculator/internal/config"
	"github.com/ddcalc/investment-calculator/internal/output"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newProjectCommand(env *cliEnv) *cobra.Command {
	var format, outDir string

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project a single investment and the aggregate of staggered cohorts",
		RunE: func(cmd *cobra.Command, args []string) error {
			ce, log, err := env.engine()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			proj, err := ce.Project(cmd.Context())
			if err != nil {
				return fmt.Errorf("projection failed: %w", err)
			}

			if outDir != "" {
				name, err := output.GenerateReportFile(outDir, proj, format)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", name)
				return nil
			}
			return output.GenerateReport(cmd.OutOrStdout(), proj, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format (console, csv, events-csv, json)")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "write a timestamped report file into this directory instead of stdout")
	return cmd
}

func newMatrixCommand(env *cliEnv) *cobra.Command {
	var kindName, format string

	cmd := &cobra.Command{
		Use:   "matrix",
		Short: "Print the cohort matrix (one row per start offset)",
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := calculation.ParseMatrixKind(kindName)
			if err != nil {
				return err
			}
			ce, log, err := env.engine()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			m, err := ce.Matrix(cmd.Context(), kind)
			if err != nil {
				return err
			}

			var data []byte
			switch output.NormalizeFormatName(format) {
			case "csv":
				data, err = output.MatrixCSV(m)
			case "json":
				data, err = json.MarshalIndent(struct {
					Kind    string    `json:"kind"`
					Matrix  any       `json:"matrix"`
					Summary []float64 `json:"summary"`
				}{kind.String(), m, m.ColumnSums()}, "", "  ")
			default:
				return fmt.Errorf("%w: %q (matrix supports csv, json)", output.ErrUnsupportedFormat, format)
			}
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVarP(&kindName, "kind", "k", "growth", "matrix kind (growth, tax, untaxed)")
	cmd.Flags().StringVarP(&format, "format", "f", "csv", "output format (csv, json)")
	return cmd
}

func newExampleConfigCommand() *cobra.Command {
	var outFile string

	cmd := &cobra.Command{
		Use:   "example-config",
		Short: "Write an example YAML configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			example := parser.CreateExampleConfiguration()
			if outFile != "" {
				if err := parser.SaveConfiguration(example, outFile); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outFile)
				return nil
			}
			b, err := yaml.Marshal(example)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}

	cmd.Flags().StringVarP(&outFile, "output", "o", "", "file to write (default stdout)")
	return cmd
}
