package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/sosocrosswalk/soso/internal/checksum"
	"github.com/sosocrosswalk/soso/internal/files/filesystem"
	"github.com/sosocrosswalk/soso/internal/xmldoc"
	"github.com/sosocrosswalk/soso/pkg/soso"
)

// Scanner discovers metadata records in a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided calculator and fsProvider are also thread-safe.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	extension  string
}

// NewScanner creates a new record scanner with the given checksum calculator.
// Uses OS filesystem by default.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
		extension:  soso.RecordExtension,
	}
}

// NewScannerWithFS creates a new record scanner with a custom filesystem provider.
// Panics if calculator or fsProvider is nil.
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
		extension:  soso.RecordExtension,
	}
}

// ScanDirectory recursively scans a directory and returns every record
// file below it. Hidden files and directories are skipped.
func (s *Scanner) ScanDirectory(sourcePath string) (soso.ScanResult, error) {
	dir, err := s.fsProvider.Open(sourcePath)
	if err != nil {
		return soso.ScanResult{}, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []soso.RecordFile
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}
		if file.Info().IsDir() || isHidden(file.RelativePath()) {
			return nil
		}
		if !xmldoc.HasExtension(file.Path(), s.extension) {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file.RelativePath(), err)
		}
		files = append(files, s.describe(file.Path(), file.RelativePath(), file.Info(), content))
		return nil
	})
	if err != nil {
		return soso.ScanResult{}, err
	}

	return soso.ScanResult{Files: files}, nil
}

// ScanFile describes a single record file. The extension is not checked;
// loading reports a format error for the wrong kind of file.
func (s *Scanner) ScanFile(filePath string) (soso.RecordFile, error) {
	info, err := s.fsProvider.Stat(filePath)
	if err != nil {
		return soso.RecordFile{}, fmt.Errorf("failed to stat %s: %w", filePath, err)
	}
	if info.IsDir() {
		return soso.RecordFile{}, fmt.Errorf("%s is a directory, not a record", filePath)
	}
	content, err := s.fsProvider.ReadFile(filePath)
	if err != nil {
		return soso.RecordFile{}, fmt.Errorf("failed to read %s: %w", filePath, err)
	}
	return s.describe(filePath, info.Name(), info, content), nil
}

// IsDirectory reports whether p names a directory.
func (s *Scanner) IsDirectory(p string) (bool, error) {
	info, err := s.fsProvider.Stat(p)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (s *Scanner) describe(filePath, relativePath string, info filesystem.FileInfo, content []byte) soso.RecordFile {
	unixPath := filepath.ToSlash(relativePath)
	if !strings.HasPrefix(unixPath, "./") {
		unixPath = "./" + unixPath
	}

	return soso.RecordFile{
		Path:         filePath,
		RelativePath: unixPath,
		Name:         info.Name(),
		SizeBytes:    info.Size(),
		ModifiedAt:   info.ModTime(),
		Checksum:     s.calculator.CalculateNormalized(content),
		ChecksumRaw:  s.calculator.CalculateRaw(content),
	}
}

// isHidden reports whether any segment of a relative path starts with a dot.
func isHidden(relativePath string) bool {
	for _, part := range strings.Split(path.Clean(filepath.ToSlash(relativePath)), "/") {
		if len(part) > 1 && part[0] == '.' && part != ".." {
			return true
		}
	}
	return false
}
