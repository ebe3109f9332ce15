package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sosocrosswalk/soso/internal/conversion"
	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

var convertCmd = &cobra.Command{
	Use:   "convert <record.xml>",
	Short: "Convert one metadata record to SOSO JSON-LD",
	Long: `Convert reads one SPASE or EML record and writes the SOSO JSON-LD
Dataset document derived from it.

The document goes to stdout unless --output names a file. Properties the
record cannot supply are omitted. Override values win over every derived
value; precedence from lowest to highest is:

  overrides in soso.yaml < --overrides-file < --set < --set-json < --in-language`,
	Example: `  # Convert a SPASE record, resolving sibling Person/Instrument records
  soso convert NASA/NumericalData/Wind/MFI/PT1M.xml --repository-root .

  # Convert an EML package and inject a publisher
  soso convert knb-lter-sev.31.999.xml -s eml \
    --set-json 'publisher={"@type":"Organization","name":"EDI"}'

  # Let the schema be detected from content, write to a file
  soso convert record.xml -s auto -o record.json`,
	Args:              RequireRecordPath,
	ValidArgsFunction: completeRecordFile,
	RunE:              runConvert,
}

type convertFlagValues struct {
	conversion conversionFlagValues
	output     string
	indent     int
}

var convertFlags convertFlagValues

func init() {
	rootCmd.AddCommand(convertCmd)

	addConversionFlags(convertCmd, &convertFlags.conversion)
	convertCmd.Flags().StringVarP(&convertFlags.output, "output", "o", "",
		"Write the document to this file instead of stdout")
	convertCmd.Flags().IntVar(&convertFlags.indent, "indent", soso.DefaultIndent,
		"JSON indentation width (0 for compact output)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	settings, err := resolveConversion(cmd, &convertFlags.conversion, cfg, logger)
	if err != nil {
		return err
	}
	indent := convertFlags.indent
	if !cmd.Flags().Changed("indent") && cfg != nil && cfg.Output.Indent != nil {
		indent = *cfg.Output.Indent
	}
	if indent < 0 {
		return fmt.Errorf("indent cannot be negative: %w", soso.ErrInvalidConfig)
	}

	converter := conversion.NewConverter(filesystem.NewOSFileSystem(), logger)
	result, err := converter.Convert(soso.ConversionRequest{
		Path:           args[0],
		Strategy:       settings.Strategy,
		Overrides:      settings.Overrides,
		Extended:       settings.Extended,
		RepositoryRoot: settings.RepositoryRoot,
	})
	if err != nil {
		return err
	}

	data, err := conversion.Marshal(result.Document, indent)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", args[0], err)
	}

	if convertFlags.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(convertFlags.output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", convertFlags.output, err)
	}
	logger.Info("Converted %s (%s) to %s in %s", args[0], result.Strategy, convertFlags.output, result.Duration)
	return nil
}
