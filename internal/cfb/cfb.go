// Package cfb names the six streams a scene container keeps inside its
// Compound File Binary (OLE2) container and handles the one piece of that
// boundary this decoder does own: each stream's optional gzip framing.
//
// Reading the compound file itself is the caller's concern, not this
// package's: CFB directory walking is a generic, format-agnostic problem
// with no connection to scene semantics, so it is left to whatever CFB
// reader the embedding application already uses. FromNamed adapts that
// reader's output, keyed by entry name, into a Streams value.
package cfb

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// Streams holds the six top-level streams a scene container is expected
// to carry, already gzip-decompressed. A missing stream is left nil: the
// chunk parser treats an empty byte slice as an empty sibling run, so
// downstream code never needs to special-case absence.
type Streams struct {
	ClassData      []byte
	ClassDirectory []byte
	Config         []byte
	DllDirectory   []byte
	Scene          []byte
	VideoPostQueue []byte
}

// streamNames maps a CFB entry name to the Streams field it feeds.
// ClassDirectory3 is a newer release's replacement for ClassDirectory and
// is written to the same field: only one of the two is ever present in a
// given file.
var streamNames = map[string]func(*Streams) *[]byte{
	"ClassData":       func(s *Streams) *[]byte { return &s.ClassData },
	"ClassDirectory":  func(s *Streams) *[]byte { return &s.ClassDirectory },
	"ClassDirectory3": func(s *Streams) *[]byte { return &s.ClassDirectory },
	"Config":          func(s *Streams) *[]byte { return &s.Config },
	"DllDirectory":    func(s *Streams) *[]byte { return &s.DllDirectory },
	"Scene":           func(s *Streams) *[]byte { return &s.Scene },
	"VideoPostQueue":  func(s *Streams) *[]byte { return &s.VideoPostQueue },
}

// FromNamed builds a Streams value from a compound file's entries, keyed
// by entry name exactly as the container stores it. Entries with no
// matching field are ignored; each recognized entry's bytes are passed
// through Decompress before being stored.
func FromNamed(entries map[string][]byte) Streams {
	var out Streams
	for name, raw := range entries {
		field, ok := streamNames[name]
		if !ok {
			continue
		}
		*field(&out) = Decompress(raw)
	}
	return out
}

// Decompress transparently gzip-decompresses data whose first two bytes
// are the gzip magic number; anything else is returned unchanged, since
// not every stream is necessarily compressed.
func Decompress(data []byte) []byte {
	if len(data) < 10 || data[0] != 0x1F || data[1] != 0x8B {
		return data
	}
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return data
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return data
	}
	return out
}
