package chunk

import (
	"encoding/binary"
	"math"
)

// Get walks types as a path of direct-child lookups starting at chunk,
// returning the descendant reached, or false if any step has no match.
// At each level only the first child with the matching type is taken.
func Get(start *Chunk, types ...uint16) (*Chunk, bool) {
	cur := start
	for _, t := range types {
		next, ok := firstChild(cur, t)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func firstChild(c *Chunk, typ uint16) (*Chunk, bool) {
	for _, ch := range c.Children {
		if ch.Type == typ {
			return ch, true
		}
	}
	return nil, false
}

// payload returns the raw bytes of the first direct-child leaf of chunk
// matching one of types, trying each candidate type in order. It returns
// false when none of the candidates has a matching leaf child.
func payload(c *Chunk, types ...uint16) ([]byte, bool) {
	for _, t := range types {
		for _, ch := range c.Children {
			if ch.Type == t && !ch.IsContainer() {
				return ch.Payload, true
			}
		}
	}
	return nil, false
}

// U32 reinterprets the first matching leaf's payload as a contiguous
// array of little-endian uint32 values.
func U32(c *Chunk, types ...uint16) []uint32 {
	p, ok := payload(c, types...)
	if !ok {
		return nil
	}
	n := len(p) / 4
	out := make([]uint32, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint32(p[i*4:])
	}
	return out
}

// I32 reinterprets the first matching leaf's payload as a contiguous
// array of little-endian int32 values.
func I32(c *Chunk, types ...uint16) []int32 {
	p, ok := payload(c, types...)
	if !ok {
		return nil
	}
	n := len(p) / 4
	out := make([]int32, n)
	for i := 0; i < n; i++ {
		out[i] = int32(binary.LittleEndian.Uint32(p[i*4:]))
	}
	return out
}

// F32 reinterprets the first matching leaf's payload as a contiguous
// array of little-endian float32 values.
func F32(c *Chunk, types ...uint16) []float32 {
	p, ok := payload(c, types...)
	if !ok {
		return nil
	}
	n := len(p) / 4
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		out[i] = decodeF32(p[i*4:])
	}
	return out
}

// Bool reinterprets the first matching leaf's payload as a contiguous
// array of single-byte booleans (non-zero is true).
func Bool(c *Chunk, types ...uint16) []bool {
	p, ok := payload(c, types...)
	if !ok {
		return nil
	}
	out := make([]bool, len(p))
	for i, b := range p {
		out[i] = b != 0
	}
	return out
}

// Vec3 reinterprets the first matching leaf's payload as a contiguous
// array of (f32,f32,f32) triples.
func Vec3(c *Chunk, types ...uint16) [][3]float32 {
	p, ok := payload(c, types...)
	if !ok {
		return nil
	}
	n := len(p) / 12
	out := make([][3]float32, n)
	for i := 0; i < n; i++ {
		off := i * 12
		out[i] = [3]float32{decodeF32(p[off:]), decodeF32(p[off+4:]), decodeF32(p[off+8:])}
	}
	return out
}

// Bytes reinterprets the first matching leaf's payload as raw bytes
// (the "char" property type).
func Bytes(c *Chunk, types ...uint16) []byte {
	p, ok := payload(c, types...)
	if !ok {
		return nil
	}
	return p
}

// U16 reinterprets the first matching leaf's payload as a contiguous
// array of little-endian uint16 values, used for UTF-16 strings and for
// editable-poly face streams.
func U16(c *Chunk, types ...uint16) []uint16 {
	p, ok := payload(c, types...)
	if !ok {
		return nil
	}
	n := len(p) / 2
	out := make([]uint16, n)
	for i := 0; i < n; i++ {
		out[i] = binary.LittleEndian.Uint16(p[i*2:])
	}
	return out
}

// ClassDataProp reinterprets the first matching leaf's payload as a
// contiguous array of ClassData records (dllIndex u32, classID 2xu32,
// superClassID u32 -- 16 bytes each).
func ClassDataProp(c *Chunk, types ...uint16) []ClassData {
	p, ok := payload(c, types...)
	if !ok {
		return nil
	}
	n := len(p) / 16
	out := make([]ClassData, n)
	for i := 0; i < n; i++ {
		off := i * 16
		out[i] = ClassData{
			DllIndex:     binary.LittleEndian.Uint32(p[off:]),
			ClassID:      [2]uint32{binary.LittleEndian.Uint32(p[off+4:]), binary.LittleEndian.Uint32(p[off+8:])},
			SuperClassID: binary.LittleEndian.Uint32(p[off+12:]),
		}
	}
	return out
}

func decodeF32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
