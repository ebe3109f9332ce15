package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/sosocrosswalk/soso/internal/checksum"
)

// BenchmarkScanDirectory benchmarks directory scanning with real filesystem
func BenchmarkScanDirectory(b *testing.B) {
	tempDir := b.TempDir()

	for i := 0; i < 10; i++ {
		filename := filepath.Join(tempDir, fmt.Sprintf("record%d.xml", i))
		if err := os.WriteFile(filename, []byte(record), 0644); err != nil {
			b.Fatal(err)
		}
	}

	fileScanner := NewScanner(checksum.New())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := fileScanner.ScanDirectory(tempDir); err != nil {
			b.Fatal(err)
		}
	}
}
