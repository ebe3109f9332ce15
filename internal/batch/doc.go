// Package batch converts many records in one invocation.
//
// A batch walks its inputs once, building a searched set owned by that
// invocation: a path seen twice is converted once, and a record whose
// normalized content repeats an earlier one is reported as a duplicate
// instead of being converted again. The remaining records go through a
// worker pool. Results are written either as one JSON-LD file per record,
// named by the record's UUID v5 identity, or as JSON lines.
//
// # Error Policy
//
// By default the first failed record halts the batch; records not yet
// converted are reported as skipped. With ContinueOnError failed records
// are reported and the rest of the batch still runs. Either way a batch
// with failed or skipped records returns soso.ErrBatchIncomplete alongside
// its report.
package batch
