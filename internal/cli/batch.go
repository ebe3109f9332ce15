package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/encoding/json"
	"github.com/spf13/cobra"

	"github.com/sosocrosswalk/soso/internal/batch"
	"github.com/sosocrosswalk/soso/internal/config"
	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/internal/metrics"
	"github.com/sosocrosswalk/soso/internal/tui"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

var batchCmd = &cobra.Command{
	Use:   "batch <path>...",
	Short: "Convert many records, walking directories for .xml files",
	Long: `Batch converts every record named on the command line. Directories are
walked recursively for .xml files; hidden files and directories are skipped.

A path reached twice in one invocation is converted once. Records whose
content is identical (ignoring layout) are reported as duplicates and
converted once.

Without --output-dir each document is written to stdout as one JSON line.
With --output-dir each document is written to its own file, named by a
UUIDv5 of the record's resource ID.

By default the batch halts at the first failed record and the remaining
records are reported as skipped. --continue-on-error converts everything it
can. Either way a batch with failed or skipped records exits with code 14.`,
	Example: `  # Convert a SPASE repository checkout
  soso batch ./spase/NASA --repository-root ./spase --output-dir ./jsonld

  # Stream EML packages as JSON lines, keeping going past bad records
  soso batch ./eml -s eml --continue-on-error > datasets.jsonl

  # Write a JSON report and a Prometheus textfile
  soso batch ./records --output-dir out --report report.json --metrics-file soso.prom`,
	Args: RequireInputs,
	RunE: runBatch,
}

type batchFlagValues struct {
	conversion      conversionFlagValues
	outputDir       string
	indent          int
	workers         int
	continueOnError bool
	report          string
	metricsFile     string
}

var batchFlags batchFlagValues

func init() {
	rootCmd.AddCommand(batchCmd)

	addConversionFlags(batchCmd, &batchFlags.conversion)
	batchCmd.Flags().StringVar(&batchFlags.outputDir, "output-dir", "",
		"Write one JSON-LD file per record to this directory (default: JSON lines on stdout)")
	batchCmd.Flags().IntVar(&batchFlags.indent, "indent", soso.DefaultIndent,
		"JSON indentation width for files in --output-dir")
	batchCmd.Flags().IntVarP(&batchFlags.workers, "workers", "w", 0,
		"Records converted concurrently (default: one per CPU)")
	batchCmd.Flags().BoolVar(&batchFlags.continueOnError, "continue-on-error", false,
		"Skip failed records instead of halting the batch")
	batchCmd.Flags().StringVar(&batchFlags.report, "report", "",
		"Write the batch report as JSON to this file ('-' for stderr)")
	batchCmd.Flags().StringVar(&batchFlags.metricsFile, "metrics-file", "",
		"Write Prometheus metrics in textfile format to this file")

	_ = batchCmd.RegisterFlagCompletionFunc("output-dir", completeDirectories)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	settings, err := resolveConversion(cmd, &batchFlags.conversion, cfg, logger)
	if err != nil {
		return err
	}
	batchCfg := resolveBatchConfig(cmd, args, settings, cfg)

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()
	runner := batch.NewRunner(filesystem.NewOSFileSystem(), logger, cmd.OutOrStdout(), m)
	report, runErr := runner.Run(ctx, batchCfg)
	if report == nil {
		return runErr
	}

	format, _ := cmd.Flags().GetString("log-format")
	if format != config.LogFormatJSON {
		renderer := tui.NewRenderer(outputMode(cmd.ErrOrStderr()))
		fmt.Fprintln(cmd.ErrOrStderr(), renderer.Summary(report))
	}

	if batchFlags.report != "" {
		if err := writeReport(cmd.ErrOrStderr(), batchFlags.report, report); err != nil {
			return err
		}
	}

	metricsFile := batchFlags.metricsFile
	if metricsFile == "" && cfg != nil {
		metricsFile = cfg.MetricsFile
	}
	if metricsFile != "" {
		if err := m.WriteToTextfile(metricsFile); err != nil {
			return fmt.Errorf("failed to write metrics: %w", err)
		}
		logger.Verbose("Metrics written to %s", metricsFile)
	}
	return runErr
}

// resolveBatchConfig applies precedence flag > soso.yaml > default to the
// batch-only settings.
func resolveBatchConfig(cmd *cobra.Command, inputs []string, s conversionSettings, cfg *config.ProjectConfig) soso.BatchConfig {
	if cfg == nil {
		cfg = &config.ProjectConfig{}
	}
	bc := soso.BatchConfig{
		Inputs:          inputs,
		Strategy:        s.Strategy,
		Overrides:       s.Overrides,
		Extended:        s.Extended,
		RepositoryRoot:  s.RepositoryRoot,
		OutputDir:       batchFlags.outputDir,
		Indent:          batchFlags.indent,
		Workers:         batchFlags.workers,
		ContinueOnError: batchFlags.continueOnError,
	}
	if !cmd.Flags().Changed("output-dir") {
		bc.OutputDir = cfg.Output.Dir
	}
	if !cmd.Flags().Changed("indent") && cfg.Output.Indent != nil {
		bc.Indent = *cfg.Output.Indent
	}
	if !cmd.Flags().Changed("workers") {
		bc.Workers = cfg.Workers
	}
	if !cmd.Flags().Changed("continue-on-error") {
		bc.ContinueOnError = cfg.ContinueOnError
	}
	return bc
}

func outputMode(w io.Writer) tui.Mode {
	if f, ok := w.(*os.File); ok {
		return tui.DetectMode(f)
	}
	return tui.ModePlain
}

func writeReport(stderr io.Writer, path string, report *soso.BatchReport) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	data = append(data, '\n')
	if path == "-" {
		_, err = stderr.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
