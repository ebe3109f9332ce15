package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "soso",
	Short: "Crosswalk scientific metadata records to SOSO JSON-LD",
	Long: `soso converts discipline metadata records (SPASE, EML) into
Science-On-Schema.org JSON-LD Dataset documents, ready for data catalogs
and search engine indexing.

Each record is read from a local XML file; nothing is fetched over the
network. Properties the source record cannot supply are omitted, never
written as null. Values the crosswalk cannot derive can be supplied with
--set, --set-json, --overrides-file or the overrides section of soso.yaml.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or override values
  11 - Input file has the wrong extension
  12 - Input file is not well-formed XML
  13 - No crosswalk registered for the schema name
  14 - Batch finished with failed or skipped records`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("log-format", "",
		"Log format: console or json.\n"+
			"Alternative: SOSO_LOG_FORMAT environment variable or log.format in soso.yaml")
	rootCmd.PersistentFlags().String("config", "",
		"Path to a soso.yaml config file (default: ./soso.yaml when present)")

	_ = rootCmd.RegisterFlagCompletionFunc("log-format", completeLogFormats)
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
