package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/sosocrosswalk/soso/internal/checksum"
	"github.com/sosocrosswalk/soso/internal/conversion"
	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/internal/files/scanner"
	"github.com/sosocrosswalk/soso/internal/identity"
	"github.com/sosocrosswalk/soso/internal/logging"
	"github.com/sosocrosswalk/soso/internal/metrics"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

// errHalted marks records never attempted because the batch stopped.
var errHalted = errors.New("batch halted before this record was converted")

// Runner converts batches of records. A Runner keeps no state between
// runs and may be reused.
type Runner struct {
	fs        filesystem.FileSystemProvider
	scanner   *scanner.Scanner
	converter *conversion.Converter
	logger    soso.Logger
	metrics   *metrics.Metrics
	out       io.Writer
}

// NewRunner creates a Runner reading records through fs. JSON lines go to
// out when a batch has no output directory. m may be nil.
// Panics if fs or out is nil.
func NewRunner(fs filesystem.FileSystemProvider, logger soso.Logger, out io.Writer, m *metrics.Metrics) *Runner {
	if fs == nil {
		panic("fs cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Runner{
		fs:        fs,
		scanner:   scanner.NewScannerWithFS(checksum.New(), fs),
		converter: conversion.NewConverter(fs, logger),
		logger:    logger,
		metrics:   m,
		out:       out,
	}
}

// entry is one candidate record. A nil result means it still has to be
// converted.
type entry struct {
	file   soso.RecordFile
	result *soso.RecordResult
}

type job struct {
	index int
	file  soso.RecordFile
}

type outcome struct {
	index    int
	result   soso.RecordResult
	strategy string
	id       string
	document map[string]any
	data     []byte
}

// Run converts every record named by cfg.Inputs.
func (r *Runner) Run(ctx context.Context, cfg soso.BatchConfig) (*soso.BatchReport, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()

	entries, inputFailed := r.collect(cfg.Inputs)
	halt := inputFailed && !cfg.ContinueOnError

	var jobs []job
	for i, e := range entries {
		if e.result == nil {
			jobs = append(jobs, job{index: i, file: e.file})
		}
	}
	r.logger.Verbose("Found %d records, %d to convert", len(entries), len(jobs))

	if cfg.OutputDir != "" {
		if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	if halt {
		cancel()
	}
	r.convertAll(runCtx, cancel, &cfg, jobs, entries)

	report := &soso.BatchReport{}
	for _, e := range entries {
		report.Add(*e.result)
		r.logRecord(*e.result)
	}
	report.Duration = time.Since(start)
	if r.metrics != nil {
		r.metrics.RecordBatch(report.Duration)
	}

	r.logger.Info("Converted %d, failed %d, skipped %d, duplicate %d in %s",
		report.Converted, report.Failed, report.Skipped, report.Duplicate, report.Duration.Round(time.Millisecond))

	if !report.Complete() {
		err := fmt.Errorf("%d of %d records not converted: %w",
			report.Failed+report.Skipped, len(report.Records), soso.ErrBatchIncomplete)
		if ctx.Err() != nil {
			err = errors.Join(err, ctx.Err())
		}
		return report, err
	}
	return report, nil
}

// convertAll runs the worker pool over jobs and fills in their entries.
// Jobs still pending when ctx ends are marked skipped.
func (r *Runner) convertAll(ctx context.Context, cancel context.CancelFunc, cfg *soso.BatchConfig, jobs []job, entries []entry) {
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	var (
		queue   = make(chan job)
		resultC = make(chan outcome)
		wg      sync.WaitGroup
	)
	for k := 0; k < workers; k++ {
		wg.Add(1)
		go r.worker(ctx, cfg, queue, resultC, &wg)
	}
	go func() {
		defer close(queue)
		for _, j := range jobs {
			select {
			case queue <- j:
			case <-ctx.Done():
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(resultC)
	}()

	written := make(map[string]string)
	for o := range resultC {
		if o.result.Status == soso.StatusConverted {
			o.result = r.write(cfg, o, written)
		}
		if r.metrics != nil {
			strategy := o.strategy
			if strategy == "" {
				strategy = cfg.Strategy
			}
			r.metrics.RecordResult(strategy, o.result)
			if o.result.Status == soso.StatusConverted {
				r.metrics.RecordProperties(o.document)
			}
		}
		if o.result.Status == soso.StatusFailed && !cfg.ContinueOnError {
			cancel()
		}
		result := o.result
		entries[o.index].result = &result
	}

	for i := range entries {
		if entries[i].result == nil {
			entries[i].result = &soso.RecordResult{
				Path:   entries[i].file.Path,
				Status: soso.StatusSkipped,
				Error:  errHalted.Error(),
			}
		}
	}
}

func (r *Runner) worker(ctx context.Context, cfg *soso.BatchConfig, queue <-chan job, resultC chan<- outcome, wg *sync.WaitGroup) {
	defer wg.Done()
	for j := range queue {
		if ctx.Err() != nil {
			resultC <- outcome{index: j.index, result: soso.RecordResult{
				Path:   j.file.Path,
				Status: soso.StatusSkipped,
				Error:  errHalted.Error(),
			}}
			continue
		}
		resultC <- r.convert(cfg, j)
	}
}

func (r *Runner) convert(cfg *soso.BatchConfig, j job) outcome {
	start := time.Now()
	o := outcome{index: j.index, result: soso.RecordResult{Path: j.file.Path}}

	converted, err := r.converter.Convert(cfg.Request(j.file.Path))
	if err == nil {
		indent := 0
		if cfg.OutputDir != "" {
			indent = cfg.Indent
		}
		o.data, err = conversion.Marshal(converted.Document, indent)
	}
	o.result.Duration = time.Since(start)
	if err != nil {
		o.result.Status = soso.StatusFailed
		o.result.Error = err.Error()
		return o
	}

	o.result.Status = soso.StatusConverted
	o.strategy = converted.Strategy
	o.id = converted.ID
	o.document = converted.Document
	return o
}

// write stores a converted document. Two records with one identity are
// written once; the second is reported as a duplicate of the first.
func (r *Runner) write(cfg *soso.BatchConfig, o outcome, written map[string]string) soso.RecordResult {
	result := o.result
	if cfg.OutputDir == "" {
		if _, err := r.out.Write(o.data); err != nil {
			result.Status = soso.StatusFailed
			result.Error = fmt.Sprintf("failed to write output: %v", err)
		}
		return result
	}

	name := identity.FileName(identity.Key(o.id, result.Path))
	if first, ok := written[name]; ok {
		result.Status = soso.StatusDuplicate
		result.DuplicateOf = first
		return result
	}
	target := filepath.Join(cfg.OutputDir, name)
	if err := os.WriteFile(target, o.data, 0o644); err != nil {
		result.Status = soso.StatusFailed
		result.Error = fmt.Sprintf("failed to write output: %v", err)
		return result
	}
	written[name] = result.Path
	result.Output = target
	return result
}

func (r *Runner) logRecord(result soso.RecordResult) {
	if rl, ok := r.logger.(logging.RecordLogger); ok {
		rl.Record(result)
		return
	}
	switch result.Status {
	case soso.StatusFailed:
		r.logger.Error("%s: %s", result.Path, result.Error)
	case soso.StatusSkipped:
		r.logger.Verbose("%s: skipped", result.Path)
	case soso.StatusDuplicate:
		r.logger.Verbose("%s: duplicate of %s", result.Path, result.DuplicateOf)
	default:
		r.logger.Verbose("%s: converted in %s", result.Path, result.Duration.Round(time.Microsecond))
	}
}
