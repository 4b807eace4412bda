// File: pkg/collect/text.go
package collect

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

// ErrNotText is returned when a matched file cannot be decoded as text.
var ErrNotText = errors.New("file content is not text")

// isText reports whether data can be treated as text: it must contain no
// null bytes and decode as valid UTF-8. Empty files are considered text.
func isText(data []byte) bool {
	if bytes.IndexByte(data, 0) >= 0 {
		return false
	}
	return utf8.Valid(data)
}
