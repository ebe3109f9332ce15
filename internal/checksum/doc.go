// Package checksum hashes metadata records.
//
// Two checksums are computed per record:
//
//   - Raw checksum: hash of the exact file content
//   - Normalized checksum: hash after comments, processing instructions
//     and layout whitespace are removed
//
// The batch driver uses the normalized checksum to spot the same record
// stored under several paths, and converts it once.
//
// # Example Usage
//
//	calculator := checksum.New()
//	raw := calculator.CalculateRaw(content)
//	normalized := calculator.CalculateNormalized(content)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
