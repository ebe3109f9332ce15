package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RequireRecordPath validates that exactly one record argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireRecordPath(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <record.xml>

Usage: %s

Example:
  %s NASA/NumericalData/Wind/MFI/PT1M.xml`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d (use 'soso batch' for several records)", len(args))
	}
	return nil
}

// RequireInputs validates that at least one file or directory is provided.
func RequireInputs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <path>...

Usage: %s

Example:
  %s ./spase/NASA --output-dir ./jsonld`, cmd.UseLine(), cmd.CommandPath())
	}
	return nil
}

// RequireStrategyName validates that exactly one strategy argument is provided.
func RequireStrategyName(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <strategy>

Usage: %s

Example:
  %s spase

Use 'soso strategies' to see available strategies.`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}
