package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
)

type embedFile struct {
	fsys    fs.FS
	absPath string
	relPath string
	info    fs.FileInfo
}

func (f *embedFile) Path() string         { return f.absPath }
func (f *embedFile) RelativePath() string { return f.relPath }
func (f *embedFile) Info() FileInfo       { return f.info }

func (f *embedFile) ReadContent() ([]byte, error) {
	return fs.ReadFile(f.fsys, f.absPath)
}

type embedDirectory struct {
	fsys    fs.FS
	absPath string
}

func (d *embedDirectory) Path() string { return d.absPath }

func (d *embedDirectory) Walk(fn func(File, error) error) error {
	return fs.WalkDir(d.fsys, d.absPath, func(filePath string, entry fs.DirEntry, err error) error {
		if err != nil {
			return callSafely(fn, filePath, nil, err)
		}

		info, err := entry.Info()
		if err != nil {
			return callSafely(fn, filePath, nil, fmt.Errorf("failed to get file info for %s: %w", filePath, err))
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(filePath, d.absPath), "/")
		if rel == "" {
			rel = "."
		}

		return callSafely(fn, filePath, &embedFile{fsys: d.fsys, absPath: filePath, relPath: rel, info: info}, nil)
	})
}

// EmbedFileSystem implements FileSystemProvider for a read-only fs.FS,
// typically an embed.FS. Paths are resolved below root.
type EmbedFileSystem struct {
	fsys fs.FS
	root string
}

// NewEmbedFileSystem wraps fsys, treating root as the top directory.
func NewEmbedFileSystem(fsys fs.FS, root string) *EmbedFileSystem {
	return &EmbedFileSystem{fsys: fsys, root: path.Clean(root)}
}

func (efs *EmbedFileSystem) resolve(p string) string {
	p = strings.TrimPrefix(strings.ReplaceAll(p, "\\", "/"), "/")
	if p == "" || p == "." {
		return efs.root
	}
	if efs.root == "." || strings.HasPrefix(p, efs.root+"/") {
		return path.Clean(p)
	}
	return path.Join(efs.root, p)
}

func (efs *EmbedFileSystem) Open(openPath string) (Directory, error) {
	absPath := efs.resolve(openPath)
	info, err := fs.Stat(efs.fsys, absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", openPath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &embedDirectory{fsys: efs.fsys, absPath: absPath}, nil
}

func (efs *EmbedFileSystem) ReadFile(filePath string) ([]byte, error) {
	content, err := fs.ReadFile(efs.fsys, efs.resolve(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filePath, err)
	}
	return content, nil
}

func (efs *EmbedFileSystem) Stat(statPath string) (FileInfo, error) {
	info, err := fs.Stat(efs.fsys, efs.resolve(statPath))
	if err != nil {
		return nil, fmt.Errorf("failed to stat path %s: %w", statPath, err)
	}
	return info, nil
}
