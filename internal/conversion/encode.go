package conversion

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/segmentio/encoding/json"
)

// Encode writes doc as JSON. Indent zero writes a single line, which is
// the JSON lines form. Map keys are sorted and HTML characters are left
// unescaped so URL templates stay readable.
func Encode(w io.Writer, doc map[string]any, indent int) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetSortMapKeys(true)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return nil
}

// Marshal returns the encoded document.
func Marshal(doc map[string]any, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, indent); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
