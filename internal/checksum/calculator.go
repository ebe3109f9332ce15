package checksum

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"
)

// Calculator computes record checksums.
type Calculator interface {
	// CalculateRaw computes a checksum of the raw, unmodified content.
	CalculateRaw(content []byte) string

	// CalculateNormalized computes a checksum of normalized content.
	// Records that differ only in layout share a normalized checksum.
	CalculateNormalized(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
// Normalization:
//  1. Drop XML comments and processing instructions (including the
//     <?xml ...?> declaration)
//  2. Drop whitespace between tags
//  3. Collapse remaining whitespace runs to single spaces
//
// CDATA sections are kept verbatim. SHA256 is a zero-size type and is safe
// for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// CalculateRaw computes SHA-256 of raw content.
func (c SHA256) CalculateRaw(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// CalculateNormalized computes SHA-256 of normalized content.
func (c SHA256) CalculateNormalized(content []byte) string {
	normalized := c.normalize(string(content))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

type markupState int

const (
	msText markupState = iota
	msTag
	msComment
	msInstruction
	msCData
)

const (
	commentOpen      = "<!--"
	commentClose     = "-->"
	instructionOpen  = "<?"
	instructionClose = "?>"
	cdataOpen        = "<![CDATA["
	cdataClose       = "]]>"
)

// normalize applies the normalization rules to content.
func (c SHA256) normalize(content string) string {
	var b strings.Builder
	b.Grow(len(content))

	state := msText
	space := false
	var last byte

	write := func(ch byte) {
		b.WriteByte(ch)
		last = ch
	}

	i := 0
	for i < len(content) {
		rest := content[i:]
		switch state {
		case msComment, msInstruction:
			closer := commentClose
			if state == msInstruction {
				closer = instructionClose
			}
			if strings.HasPrefix(rest, closer) {
				state = msText
				i += len(closer)
			} else {
				i++
			}
			continue

		case msCData:
			if strings.HasPrefix(rest, cdataClose) {
				b.WriteString(cdataClose)
				last = '>'
				state = msText
				i += len(cdataClose)
			} else {
				write(content[i])
				i++
			}
			continue
		}

		if state == msText {
			switch {
			case strings.HasPrefix(rest, commentOpen):
				state = msComment
				i += len(commentOpen)
				continue
			case strings.HasPrefix(rest, instructionOpen):
				state = msInstruction
				i += len(instructionOpen)
				continue
			case strings.HasPrefix(rest, cdataOpen):
				space = false
				b.WriteString(cdataOpen)
				last = '['
				state = msCData
				i += len(cdataOpen)
				continue
			}
		}

		ch := content[i]
		i++
		if unicode.IsSpace(rune(ch)) {
			space = true
			continue
		}
		if space && keepSpace(state, last, ch) {
			write(' ')
		}
		space = false

		write(ch)
		switch {
		case state == msText && ch == '<':
			state = msTag
		case state == msTag && ch == '>':
			state = msText
		}
	}

	return b.String()
}

// keepSpace reports whether a whitespace run between last and next
// carries content.
func keepSpace(state markupState, last, next byte) bool {
	if last == 0 {
		return false
	}
	if state == msText {
		return last != '>' && next != '<'
	}
	return last != '=' && next != '=' && next != '>' && next != '/'
}
