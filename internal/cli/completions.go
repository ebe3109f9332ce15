package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/sosocrosswalk/soso/internal/config"
	"github.com/sosocrosswalk/soso/internal/crosswalk"
	"github.com/sosocrosswalk/soso/internal/examples"
)

// logFormats contains valid --log-format values for shell completion.
var logFormats = []string{config.LogFormatConsole, config.LogFormatJSON}

func filterPrefix(candidates []string, toComplete string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			matches = append(matches, c)
		}
	}
	return matches
}

// completeStrategyNames provides shell completion for --strategy values.
func completeStrategyNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	names := append(crosswalk.Names(), crosswalk.AutoDetect)
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeExampleNames provides shell completion for the example argument.
func completeExampleNames(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	var names []string
	for _, ex := range examples.List() {
		names = append(names, ex.Strategy)
	}
	return filterPrefix(names, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeLogFormats provides shell completion for --log-format values.
func completeLogFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return filterPrefix(logFormats, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeRecordFile provides shell completion for a single record path.
func completeRecordFile(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return []string{"xml"}, cobra.ShellCompDirectiveFilterFileExt
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return nil, cobra.ShellCompDirectiveFilterDirs
}
