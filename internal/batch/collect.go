package batch

import (
	"path/filepath"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// collect expands inputs into candidate records. The searched set lives
// for this call only: a path reached twice is kept once, and a record
// whose normalized checksum repeats an earlier record is entered as a
// duplicate. The second return value reports whether any input failed.
func (r *Runner) collect(inputs []string) ([]entry, bool) {
	var (
		entries    []entry
		failed     bool
		searched   = make(map[string]bool)
		byChecksum = make(map[string]string)
	)

	for _, input := range inputs {
		files, err := r.expand(input)
		if err != nil {
			failed = true
			entries = append(entries, entry{
				file: soso.RecordFile{Path: input},
				result: &soso.RecordResult{
					Path:   input,
					Status: soso.StatusFailed,
					Error:  err.Error(),
				},
			})
			continue
		}

		for _, f := range files {
			key := filepath.Clean(f.Path)
			if searched[key] {
				r.logger.Verbose("%s already searched", f.Path)
				continue
			}
			searched[key] = true

			if first, ok := byChecksum[f.Checksum]; ok {
				entries = append(entries, entry{
					file: f,
					result: &soso.RecordResult{
						Path:        f.Path,
						Status:      soso.StatusDuplicate,
						DuplicateOf: first,
					},
				})
				continue
			}
			byChecksum[f.Checksum] = f.Path
			entries = append(entries, entry{file: f})
		}
	}

	return entries, failed
}

// expand returns the records named by one input: the file itself, or
// every record below a directory.
func (r *Runner) expand(input string) ([]soso.RecordFile, error) {
	dir, err := r.scanner.IsDirectory(input)
	if err != nil {
		return nil, err
	}
	if !dir {
		f, err := r.scanner.ScanFile(input)
		if err != nil {
			return nil, err
		}
		return []soso.RecordFile{f}, nil
	}

	result, err := r.scanner.ScanDirectory(input)
	if err != nil {
		return nil, err
	}
	return result.Files, nil
}
