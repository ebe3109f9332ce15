package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestRequireRecordPath(t *testing.T) {
	cmd := &cobra.Command{
		Use: "convert <record.xml>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireRecordPath(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <record.xml>") {
			t.Errorf("expected error to contain 'missing required argument: <record.xml>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		if err := RequireRecordPath(cmd, []string{"PT1M.xml"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireRecordPath(cmd, []string{"a.xml", "b.xml"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "soso batch") {
			t.Errorf("expected error to point at 'soso batch', got: %s", err.Error())
		}
	})
}

func TestRequireInputs(t *testing.T) {
	cmd := &cobra.Command{
		Use: "batch <path>...",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireInputs(cmd, nil)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <path>...") {
			t.Errorf("unexpected error: %s", err.Error())
		}
	})

	t.Run("accepts several paths", func(t *testing.T) {
		if err := RequireInputs(cmd, []string{"a", "b", "c"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})
}

func TestRequireStrategyName(t *testing.T) {
	cmd := &cobra.Command{
		Use: "example <strategy>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireStrategyName(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "soso strategies") {
			t.Errorf("expected error to contain 'soso strategies', got: %s", err.Error())
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		if err := RequireStrategyName(cmd, []string{"spase"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		if err := RequireStrategyName(cmd, []string{"spase", "eml"}); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
