package vocab

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/korean"
)

// Encoding names reported in LoadReport.
const (
	EncodingUTF8  = "utf-8"
	EncodingEUCKR = "euc-kr"
)

var errUndecodable = errors.New("content is neither valid utf-8 nor euc-kr")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// decode converts raw word-list bytes to text. UTF-8 is tried first; the
// legacy Korean code page is the only fallback.
func decode(raw []byte) (text, encoding string, err error) {
	raw = bytes.TrimPrefix(raw, utf8BOM)
	if utf8.Valid(raw) {
		return string(raw), EncodingUTF8, nil
	}

	out, err := korean.EUCKR.NewDecoder().Bytes(raw)
	if err != nil {
		return "", EncodingEUCKR, errUndecodable
	}
	s := string(out)
	if strings.ContainsRune(s, utf8.RuneError) {
		return "", EncodingEUCKR, errUndecodable
	}
	return s, EncodingEUCKR, nil
}

// parseWords extracts accepted entries from a word-list document.
func parseWords(text string) []string {
	var words []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var candidate string
		if i := strings.Index(line, " : "); i >= 0 {
			candidate = strings.TrimSpace(line[:i])
		} else {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				continue
			}
			candidate = fields[0]
		}

		if acceptable(candidate) {
			words = append(words, strings.ToLower(candidate))
		}
	}
	return words
}

// acceptable reports whether the candidate, with '.' and '-' removed, is a
// non-empty run of ASCII letters.
func acceptable(candidate string) bool {
	n := 0
	for i := 0; i < len(candidate); i++ {
		c := candidate[i]
		switch {
		case c == '.' || c == '-':
		case isASCIILetter(c):
			n++
		default:
			return false
		}
	}
	return n > 0
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
