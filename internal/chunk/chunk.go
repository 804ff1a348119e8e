// Package chunk implements the recursive, length-prefixed tag/value decoder
// shared by every stream in a scene container: ClassData, ClassDirectory,
// Config, DllDirectory, Scene and VideoPostQueue all use the same encoding,
// only their top-level chunk types differ.
//
// The format, ported from the header-walking loop in the original reader:
// each chunk starts with a 16-bit type and a 32-bit length. A zero length
// means "read an extended 64-bit length next"; a terminator of 0 there ends
// the sibling run. The top bit of whichever length field is in play marks
// the chunk as a container whose body is itself a run of sibling chunks,
// rather than an opaque payload.
package chunk

import (
	"encoding/binary"
	"fmt"
)

// Chunk is a node in the parsed tag-tree. Exactly one of Payload and
// Children is meaningful for a given chunk: a container's Payload is nil,
// a leaf's Children is nil. Insertion order of Children is significant.
type Chunk struct {
	Type    uint16
	Payload []byte
	Children []*Chunk

	// Decorations populated only for top-level scene chunks by the class
	// resolver (see classdir.Decorate). Zero values mean "not decorated".
	ClassName    string
	ClassData    ClassData
	ClassDllFile string
	ClassDllName string
}

// ClassData is the (dllIndex, classID, superClassID) record carried at
// subtype 0x2060 under a ClassDirectory entry.
type ClassData struct {
	DllIndex     uint32
	ClassID      [2]uint32
	SuperClassID uint32
}

// IsContainer reports whether the chunk holds children rather than an
// opaque payload.
func (c *Chunk) IsContainer() bool { return c.Children != nil }

// Name is the chunk's hex-formatted tag, used for display and diagnostics.
func (c *Chunk) Name() string { return fmt.Sprintf("%04X", c.Type) }

// Parse decodes data into an ordered sequence of top-level sibling chunks.
//
// Parsing of a nesting level stops, without error, the moment the region is
// too short for a header, the length sentinel (an extended length of zero)
// is seen, or a chunk's declared span would run past the end of the region.
// Chunks already parsed at that level are kept; there is no backtracking.
func Parse(data []byte) []*Chunk { return parseSiblings(data) }

func parseSiblings(data []byte) []*Chunk {
	chunks := []*Chunk{}
	pos, end := 0, len(data)
	for {
		start := pos
		if end-start < 6 {
			return chunks
		}
		typ := binary.LittleEndian.Uint16(data[start:])
		length32 := binary.LittleEndian.Uint32(data[start+2:])
		hdrEnd := start + 6
		container := false
		var length uint64

		switch {
		case length32 == 0:
			if end-hdrEnd < 8 {
				return chunks
			}
			length64 := binary.LittleEndian.Uint64(data[hdrEnd:])
			if length64 == 0 {
				return chunks // sentinel: terminate the sibling run.
			}
			if length64&(1<<63) != 0 {
				length64 &^= 1 << 63
				container = true
			}
			length = length64
			hdrEnd += 8
		case length32&0x80000000 != 0:
			length = uint64(length32 &^ 0x80000000)
			container = true
		default:
			length = uint64(length32)
		}

		chunkEnd := start + int(length)
		if chunkEnd > end || chunkEnd < hdrEnd {
			return chunks // truncated or malformed: stop at this level.
		}

		body := data[hdrEnd:chunkEnd]
		c := &Chunk{Type: typ}
		if container {
			c.Children = parseSiblings(body)
		} else {
			c.Payload = append([]byte{}, body...)
		}
		chunks = append(chunks, c)
		pos = chunkEnd
	}
}
