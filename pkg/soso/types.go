package soso

import (
	"errors"
	"fmt"
	"strings"
)

// ConversionRequest describes one record conversion.
type ConversionRequest struct {
	// Path is the source record file.
	Path string

	// Strategy is the schema-name tag selecting the crosswalk ("spase", "eml").
	Strategy string

	// Overrides are caller-supplied property values. They win over every
	// derived value on key collision. Nil values are ignored.
	Overrides map[string]any

	// Extended enables rules that go beyond the baseline crosswalk
	// (contributor, publisher, funding, license, provenance links).
	Extended bool

	// RepositoryRoot is the directory holding sibling records
	// (people, instruments, observatories). Empty means infer it.
	RepositoryRoot string
}

// Validate checks if the ConversionRequest has all required fields.
func (r *ConversionRequest) Validate() error {
	var errs []error

	if strings.TrimSpace(r.Path) == "" {
		errs = append(errs, fmt.Errorf("Path is required: %w", ErrInvalidConfig))
	}
	if strings.TrimSpace(r.Strategy) == "" {
		errs = append(errs, fmt.Errorf("Strategy is required: %w", ErrInvalidConfig))
	}
	for key := range r.Overrides {
		if strings.TrimSpace(key) == "" {
			errs = append(errs, fmt.Errorf("override with empty property name: %w", ErrInvalidOverride))
		}
	}

	return errors.Join(errs...)
}

// BatchConfig describes a conversion run over many records.
type BatchConfig struct {
	// Inputs are record files and/or directories to walk.
	Inputs []string

	Strategy       string
	Overrides      map[string]any
	Extended       bool
	RepositoryRoot string

	// OutputDir receives one JSON-LD file per record. Empty writes JSON
	// lines to the runner's writer.
	OutputDir string

	// Indent is the JSON indentation width for files in OutputDir.
	Indent int

	// Workers is the number of records converted concurrently.
	// Zero means one per CPU.
	Workers int

	// ContinueOnError skips failed records instead of halting the batch.
	ContinueOnError bool
}

// Validate checks if the BatchConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *BatchConfig) Validate() error {
	var errs []error

	if len(c.Inputs) == 0 {
		errs = append(errs, fmt.Errorf("at least one input path is required: %w", ErrInvalidConfig))
	}
	if strings.TrimSpace(c.Strategy) == "" {
		errs = append(errs, fmt.Errorf("Strategy is required: %w", ErrInvalidConfig))
	}
	if c.Workers < 0 {
		errs = append(errs, fmt.Errorf("workers cannot be negative: %w", ErrInvalidConfig))
	}
	if c.Indent < 0 {
		errs = append(errs, fmt.Errorf("indent cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// Request returns the per-record conversion request for path.
func (c *BatchConfig) Request(path string) ConversionRequest {
	return ConversionRequest{
		Path:           path,
		Strategy:       c.Strategy,
		Overrides:      c.Overrides,
		Extended:       c.Extended,
		RepositoryRoot: c.RepositoryRoot,
	}
}
