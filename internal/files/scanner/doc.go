// Package scanner discovers metadata records on disk.
//
// The scanner walks directory trees through the
// filesystem.FileSystemProvider interface, so the OS filesystem and
// in-memory trees are handled alike. For every record it reports the
// path, size, modification time and both raw and normalized checksums.
package scanner
