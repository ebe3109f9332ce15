package soso

import "time"

// RecordFile describes one metadata record found on disk.
type RecordFile struct {
	// Path is the path the record is opened by.
	Path string

	// RelativePath is the slash-separated path below the scanned root,
	// prefixed with "./".
	RelativePath string

	Name       string
	SizeBytes  int64
	ModifiedAt time.Time

	// Checksum is the normalized content checksum; records that differ
	// only in layout share it.
	Checksum string

	// ChecksumRaw is the checksum of the exact bytes.
	ChecksumRaw string
}

// ScanResult holds the records found below one root, in walk order.
type ScanResult struct {
	Files []RecordFile
}

// RecordStatus is the outcome of one record in a batch.
type RecordStatus string

const (
	StatusConverted RecordStatus = "converted"
	StatusFailed    RecordStatus = "failed"
	StatusSkipped   RecordStatus = "skipped"
	StatusDuplicate RecordStatus = "duplicate"
)

// RecordResult reports what happened to one record.
type RecordResult struct {
	Path   string       `json:"path"`
	Status RecordStatus `json:"status"`

	// Output is the written file, empty for JSON lines output.
	Output string `json:"output,omitempty"`

	// DuplicateOf names the record whose content this one repeats.
	DuplicateOf string `json:"duplicateOf,omitempty"`

	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"durationNs"`
}

// BatchReport summarizes a batch run.
type BatchReport struct {
	Converted int            `json:"converted"`
	Failed    int            `json:"failed"`
	Skipped   int            `json:"skipped"`
	Duplicate int            `json:"duplicate"`
	Records   []RecordResult `json:"records"`
	Duration  time.Duration  `json:"durationNs"`
}

// Add records r and updates the counts.
func (r *BatchReport) Add(result RecordResult) {
	switch result.Status {
	case StatusConverted:
		r.Converted++
	case StatusFailed:
		r.Failed++
	case StatusSkipped:
		r.Skipped++
	case StatusDuplicate:
		r.Duplicate++
	}
	r.Records = append(r.Records, result)
}

// Complete reports whether every record was converted or recognised as a
// duplicate.
func (r *BatchReport) Complete() bool {
	return r.Failed == 0 && r.Skipped == 0
}
