package soso_test

import (
	"errors"
	"testing"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

func TestConversionRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       soso.ConversionRequest
		wantError error
	}{
		{
			name: "valid request",
			req:  soso.ConversionRequest{Path: "a.xml", Strategy: "spase"},
		},
		{
			name:      "missing path",
			req:       soso.ConversionRequest{Strategy: "spase"},
			wantError: soso.ErrInvalidConfig,
		},
		{
			name:      "missing strategy",
			req:       soso.ConversionRequest{Path: "a.xml"},
			wantError: soso.ErrInvalidConfig,
		},
		{
			name: "blank override key",
			req: soso.ConversionRequest{
				Path: "a.xml", Strategy: "spase",
				Overrides: map[string]any{" ": "x"},
			},
			wantError: soso.ErrInvalidOverride,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantError == nil {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantError) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantError)
			}
		})
	}
}

func TestBatchConfig_Validate(t *testing.T) {
	valid := soso.BatchConfig{Inputs: []string{"records"}, Strategy: "spase"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	invalid := soso.BatchConfig{Workers: -1, Indent: -2}
	err := invalid.Validate()
	if !errors.Is(err, soso.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	// inputs, strategy, workers and indent are each reported
	if got := len(err.(interface{ Unwrap() []error }).Unwrap()); got != 4 {
		t.Errorf("expected 4 joined errors, got %d", got)
	}
}

func TestBatchConfig_Request(t *testing.T) {
	cfg := soso.BatchConfig{
		Inputs:         []string{"records"},
		Strategy:       "eml",
		Extended:       true,
		RepositoryRoot: "/repo",
		Overrides:      map[string]any{"inLanguage": "en"},
	}
	req := cfg.Request("records/a.xml")
	if req.Path != "records/a.xml" || req.Strategy != "eml" || !req.Extended || req.RepositoryRoot != "/repo" {
		t.Errorf("unexpected request: %+v", req)
	}
	if req.Overrides["inLanguage"] != "en" {
		t.Errorf("overrides not carried: %+v", req.Overrides)
	}
}
