package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// supplementaryProperties are derived by strategies beyond the crosswalk
// rules, beneath caller overrides.
var supplementaryProperties = []string{
	"alternateName",
	"inLanguage",
	"temporal",
	"measurementTechnique",
	"instrument",
	"observatory",
	"isRelatedTo",
	"isPartOf",
}

var propertiesCmd = &cobra.Command{
	Use:   "properties",
	Short: "List the SOSO properties a conversion can produce",
	Long: `Properties lists the SOSO properties produced by crosswalk rules, in
output order, followed by the supplementary properties some strategies add.

Any property, listed or not, can be set with --set or --set-json.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Crosswalk rules:")
		for _, name := range soso.PropertyNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "\nSupplementary:")
		for _, name := range supplementaryProperties {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(propertiesCmd)
}
