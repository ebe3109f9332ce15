package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sosocrosswalk/soso/internal/conversion"
	"github.com/sosocrosswalk/soso/internal/examples"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

var exampleCmd = &cobra.Command{
	Use:   "example <strategy>",
	Short: "Print an embedded example record, or its conversion",
	Long: `Example prints a sample source record for a strategy. With --convert it
prints the SOSO JSON-LD document converted from that record instead.

Available examples:
  eml    Sevilleta LTER meteorology data package (EML 2.2)
  spase  Wind MFI 1-minute magnetic field (SPASE NumericalData)`,
	Example: `  soso example spase
  soso example eml --convert --extended`,
	Args:              RequireStrategyName,
	ValidArgsFunction: completeExampleNames,
	RunE:              runExample,
}

type exampleFlagValues struct {
	convert  bool
	extended bool
}

var exampleFlags exampleFlagValues

func init() {
	rootCmd.AddCommand(exampleCmd)

	exampleCmd.Flags().BoolVar(&exampleFlags.convert, "convert", false,
		"Print the converted JSON-LD document instead of the source record")
	exampleCmd.Flags().BoolVar(&exampleFlags.extended, "extended", false,
		"Convert with the extended rules (implies --convert)")
}

func runExample(cmd *cobra.Command, args []string) error {
	ex, err := examples.Get(args[0])
	if err != nil {
		return err
	}

	if !exampleFlags.convert && !exampleFlags.extended {
		content, err := examples.Content(ex)
		if err != nil {
			return fmt.Errorf("failed to read example: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(content)
		return err
	}

	logger, err := newLogger(cmd, nil)
	if err != nil {
		return err
	}
	converter := conversion.NewConverter(examples.FS(), logger)
	result, err := converter.Convert(soso.ConversionRequest{
		Path:     ex.Path,
		Strategy: ex.Strategy,
		Extended: exampleFlags.extended,
	})
	if err != nil {
		return err
	}
	return conversion.Encode(cmd.OutOrStdout(), result.Document, soso.DefaultIndent)
}
