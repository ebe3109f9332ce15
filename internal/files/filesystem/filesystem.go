package filesystem

import (
	"fmt"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File is one entry reached while walking a Directory.
type File interface {
	// Path returns the path the provider knows the file by
	Path() string

	// RelativePath returns the slash-separated path below the walked directory
	RelativePath() string

	Info() FileInfo

	ReadContent() ([]byte, error)
}

// Directory is a tree of records that can be walked.
type Directory interface {
	Path() string

	// Walk visits every file and directory below Path in lexical order.
	// If fn returns an error, walking stops and Walk returns it.
	// A panic inside fn is converted into an error.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider opens directories and reads individual files.
type FileSystemProvider interface {
	Open(path string) (Directory, error)
	ReadFile(path string) ([]byte, error)
	Stat(path string) (FileInfo, error)
}

// callSafely runs a walk callback, converting a panic into an error.
func callSafely(fn func(File, error) error, path string, file File, err error) (callbackErr error) {
	defer func() {
		if r := recover(); r != nil {
			callbackErr = fmt.Errorf("walk callback panicked at %s: %v", path, r)
		}
	}()
	return fn(file, err)
}
