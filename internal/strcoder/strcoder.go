// Package strcoder converts the null-terminated UTF-16LE strings embedded
// in chunk payloads to Go strings. The container format and its gzip
// framing are external collaborators the decoder treats as black boxes;
// this last mile of string conversion is the same kind of concern, so it
// is delegated to golang.org/x/text rather than hand rolled.
package strcoder

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"
)

// FromUTF16 decodes a slice of little-endian UTF-16 code units into a Go
// string, stopping at the first null terminator if one is present.
func FromUTF16(units []uint16) string {
	for i, u := range units {
		if u == 0 {
			units = units[:i]
			break
		}
	}
	if len(units) == 0 {
		return ""
	}
	raw := make([]byte, len(units)*2)
	for i, u := range units {
		binary.LittleEndian.PutUint16(raw[i*2:], u)
	}
	decoder := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewDecoder()
	out, err := decoder.Bytes(raw)
	if err != nil {
		return ""
	}
	return string(out)
}
