// Package identity derives stable output names for converted records.
package identity

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// NamespaceRecordIdentity is the UUID namespace for record identities,
// derived from "sosocrosswalk/record-identity/v1" under the URL namespace.
var NamespaceRecordIdentity = uuid.NewSHA1(uuid.NameSpaceURL, []byte("sosocrosswalk/record-identity/v1"))

// OutputExtension is appended to identities to form output file names.
const OutputExtension = ".json"

// ForKey returns the UUID v5 identity of a record key. The key is the
// record's resource identifier when it has one, else its source path.
//
// Keys are normalized first:
//  1. Surrounding whitespace is trimmed
//  2. Backslashes become forward slashes
//  3. A leading "./" is removed
//  4. The result is lowercased
//
// So "./NASA/Wind.xml" and "nasa/wind.xml" share an identity.
func ForKey(key string) uuid.UUID {
	return uuid.NewSHA1(NamespaceRecordIdentity, []byte(normalizeKey(key)))
}

// FileName returns the output file name for a record key.
func FileName(key string) string {
	return ForKey(key).String() + OutputExtension
}

// Key picks the identity key for a record: its id when present,
// else its path.
func Key(id, path string) string {
	if strings.TrimSpace(id) != "" {
		return id
	}
	return path
}

func normalizeKey(key string) string {
	normalized := strings.TrimSpace(key)
	normalized = filepath.ToSlash(strings.ReplaceAll(normalized, `\`, "/"))
	normalized = strings.TrimPrefix(normalized, "./")
	return strings.ToLower(normalized)
}
