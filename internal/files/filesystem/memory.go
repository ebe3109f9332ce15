package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryFile struct {
	absPath string
	relPath string
	content []byte
	info    *memoryFileInfo
}

func (f *memoryFile) Path() string         { return f.absPath }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	if f.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", f.absPath)
	}
	return f.content, nil
}

type memoryDirectory struct {
	absPath string
	fs      *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.absPath }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	var paths []string
	for p := range d.fs.entries {
		if p == d.absPath || strings.HasPrefix(p, strings.TrimSuffix(d.absPath, "/")+"/") {
			paths = append(paths, p)
		}
	}
	sort.Strings(paths)

	for _, p := range paths {
		entry := d.fs.entries[p]
		rel := strings.TrimPrefix(strings.TrimPrefix(p, d.absPath), "/")
		if rel == "" {
			rel = "."
		}
		file := &memoryFile{absPath: entry.absPath, relPath: rel, content: entry.content, info: entry.info}
		if err := callSafely(fn, p, file, nil); err != nil {
			return err
		}
	}
	return nil
}

// MemoryFileSystem implements FileSystemProvider over an in-memory tree.
// Paths are slash-separated; relative paths resolve against the root.
type MemoryFileSystem struct {
	entries map[string]*memoryFile
	root    string
}

// NewMemoryFileSystem creates an empty tree rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryFile),
		root:    root,
	}
	mfs.addDir(root)
	return mfs
}

// Root returns the directory relative paths resolve against.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file, creating its parent directories.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	absPath := mfs.resolve(filePath)
	mfs.entries[absPath] = &memoryFile{
		absPath: absPath,
		content: []byte(content),
		info: &memoryFileInfo{
			name:    path.Base(absPath),
			size:    int64(len(content)),
			mode:    0644,
			modTime: time.Now(),
		},
	}
	for dir := path.Dir(absPath); ; dir = path.Dir(dir) {
		if _, ok := mfs.entries[dir]; !ok {
			mfs.addDir(dir)
		}
		if dir == "/" || dir == "." || dir == mfs.root {
			break
		}
	}
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.entries[dir] = &memoryFile{
		absPath: dir,
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if path.IsAbs(p) {
		return path.Clean(p)
	}
	return path.Join(mfs.root, p)
}

func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	absPath := mfs.resolve(openPath)
	entry, ok := mfs.entries[absPath]
	if !ok {
		return nil, fmt.Errorf("directory not found: %s", openPath)
	}
	if !entry.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{absPath: absPath, fs: mfs}, nil
}

func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	entry, ok := mfs.entries[mfs.resolve(filePath)]
	if !ok {
		return nil, fmt.Errorf("file not found: %s: %w", filePath, fs.ErrNotExist)
	}
	return entry.ReadContent()
}

func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	entry, ok := mfs.entries[mfs.resolve(statPath)]
	if !ok {
		return nil, fmt.Errorf("path not found: %s: %w", statPath, fs.ErrNotExist)
	}
	return entry.info, nil
}
