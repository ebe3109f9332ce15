// Package filesystem abstracts where metadata records are read from.
//
// Batch conversion walks directories of records, the sibling record
// resolver reads person, instrument and observatory records by path, and
// the example command serves records compiled into the binary. All three
// go through FileSystemProvider so they can be exercised against an
// in-memory tree in tests.
//
// Implementations:
//   - OSFileSystem: the host filesystem
//   - MemoryFileSystem: in-memory tree for tests
//   - EmbedFileSystem: any fs.FS, typically an embed.FS of example records
package filesystem
