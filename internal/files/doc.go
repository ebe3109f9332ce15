// Package files groups record discovery into sub-packages:
//   - filesystem: filesystem abstraction (OS, in-memory, embedded)
//   - scanner: record discovery and checksums
//
// # Usage
//
//	import (
//	    "github.com/sosocrosswalk/soso/internal/files/filesystem"
//	    "github.com/sosocrosswalk/soso/internal/files/scanner"
//	)
//
//	recordScanner := scanner.NewScannerWithFS(checksum.New(), filesystem.NewOSFileSystem())
//	result, err := recordScanner.ScanDirectory("./spase/NASA")
package files
