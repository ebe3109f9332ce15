package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

var strategiesCmd = &cobra.Command{
	Use:   "strategies",
	Short: "List the metadata schemas that can be converted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		for _, f := range crosswalk.List() {
			name := f.Name()
			if name == soso.DefaultStrategy {
				name += " (default)"
			}
			fmt.Fprintf(w, "%s\t%s\n", name, f.Description())
		}
		fmt.Fprintf(w, "%s\t%s\n", crosswalk.AutoDetect, "Detect the schema from the record's root element")
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(strategiesCmd)
}
