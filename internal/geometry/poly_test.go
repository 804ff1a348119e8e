package geometry

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/ids"
)

func f32Triples(lead float32, triples ...[3]float32) []byte {
	vals := []float32{lead}
	for _, t := range triples {
		vals = append(vals, t[0], t[1], t[2])
	}
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	return buf
}

func TestDecodeEditablePolyVertexGapBug(t *testing.T) {
	// The vertex triple loop reads vertex[1+3] literally instead of
	// vertex[i+3], so only the first triple's Z ever shows up correctly
	// once there is more than one triple.
	poly := &chunk.Chunk{Children: []*chunk.Chunk{
		{Type: ids.TagPolyVertices, Payload: f32Triples(0, [3]float32{1, 2, 3}, [3]float32{4, 5, 6})},
	}}
	mesh := DecodeEditablePoly(poly, func(string, ...any) {})
	if len(mesh.Vertex) != 1 {
		t.Fatalf("got %d vertices, want 1 (only one full triple fits after the leading gap)", len(mesh.Vertex))
	}
	if mesh.Vertex[0] != [3]float32{2, 3, 4} {
		t.Errorf("got %v, want {2,3,4}: vertex[2], vertex[3] and the literal vertex[1+3]", mesh.Vertex[0])
	}
}

func TestDecodeEditablePolyTextureGapBug(t *testing.T) {
	poly := &chunk.Chunk{Children: []*chunk.Chunk{
		{Type: ids.TagPolyTexCoords, Payload: f32Triples(0, [3]float32{1, 2, 3})},
	}}
	mesh := DecodeEditablePoly(poly, func(string, ...any) {})
	if len(mesh.Texture) != 1 {
		t.Fatalf("got %d texture coords, want 1", len(mesh.Texture))
	}
	if mesh.Texture[0] != [3]float32{1, 2, 3} {
		t.Errorf("got %v, want {1,2,3}: texture[1], texture[2] and the literal texture[1+2]", mesh.Texture[0])
	}
}

func u16Payload(words ...uint16) []byte {
	buf := make([]byte, 2*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint16(buf[i*2:], w)
	}
	return buf
}

func TestDecodeVertexFaceArraySimple(t *testing.T) {
	// leading 2-word header, one face: count=2 (index pairs), two indices
	// (each a 2-word pair), then a flags word with no extra-word bits set.
	words := []uint16{0, 0, 2, 0, 5, 0, 6, 0, 0}
	out := decodeVertexFaceArray(words, func(string, ...any) {})
	if len(out) != 1 {
		t.Fatalf("got %d faces, want 1", len(out))
	}
	want := []uint32{5, 6}
	if len(out[0]) != 2 || out[0][0] != want[0] || out[0][1] != want[1] {
		t.Errorf("got %v, want %v", out[0], want)
	}
}

func TestDecodeVertexFaceArrayMultipleFaces(t *testing.T) {
	// Two faces back to back: count=2 indices {5,6}, flags=0, then count=1
	// index {7}, flags=0. Each face's advance must land exactly on the next
	// face's count word, not two words short of it.
	words := []uint16{0, 0, 2, 0, 5, 0, 6, 0, 0, 1, 0, 7, 0, 0}
	out := decodeVertexFaceArray(words, func(string, ...any) {})
	if len(out) != 2 {
		t.Fatalf("got %d faces, want 2: %v", len(out), out)
	}
	if len(out[0]) != 2 || out[0][0] != 5 || out[0][1] != 6 {
		t.Errorf("out[0] = %v, want [5 6]", out[0])
	}
	if len(out[1]) != 1 || out[1][0] != 7 {
		t.Errorf("out[1] = %v, want [7]", out[1])
	}
}

func TestDecodeVertexFaceArrayCorruptSmallCountWithBit20(t *testing.T) {
	var warned bool
	warn := func(string, ...any) { warned = true }
	// count=2 (< 6) with flag bit 0x20 set: undefined in the source, so we
	// bail out with a corruption diagnostic instead of reading garbage.
	words := []uint16{0, 0, 2, 0, 5, 0, 6, 0, 0x20}
	out := decodeVertexFaceArray(words, warn)
	if !warned {
		t.Fatal("expected a corruption warning for count < 6 with bit 0x20 set")
	}
	if len(out) != 1 {
		t.Fatalf("the face read before the bad extra-word skip should still be kept, got %d faces", len(out))
	}
}

func TestDecodeCountPrefixedArray(t *testing.T) {
	out := decodeCountPrefixedArray([]uint32{2, 1, 2, 1, 3}, func(string, ...any) {})
	if len(out) != 2 {
		t.Fatalf("got %d lists, want 2", len(out))
	}
	if len(out[0]) != 2 || out[0][0] != 1 || out[0][1] != 2 {
		t.Errorf("out[0] = %v, want [1 2]", out[0])
	}
	if len(out[1]) != 1 || out[1][0] != 3 {
		t.Errorf("out[1] = %v, want [3]", out[1])
	}
}

func TestDecodeCountPrefixedArrayTruncated(t *testing.T) {
	var warned bool
	warn := func(string, ...any) { warned = true }
	out := decodeCountPrefixedArray([]uint32{5, 1, 2}, warn)
	if !warned {
		t.Fatal("a count overrunning the stream should warn")
	}
	if len(out) != 0 {
		t.Fatalf("got %d lists, want 0", len(out))
	}
}

func TestDecodeEditablePolyArrayMismatchWarns(t *testing.T) {
	var warned bool
	warn := func(string, ...any) { warned = true }
	poly := &chunk.Chunk{Children: []*chunk.Chunk{
		{Type: ids.TagPolyVertexFaces, Payload: u16Payload(0, 0, 2, 0, 5, 0, 6, 0, 0)},
		{Type: ids.TagPolyTextureFaces, Payload: func() []byte {
			buf := make([]byte, 8)
			binary.LittleEndian.PutUint32(buf, 1)
			binary.LittleEndian.PutUint32(buf[4:], 7)
			return buf
		}()},
	}}
	DecodeEditablePoly(poly, warn)
	if !warned {
		t.Fatal("mismatched vertex/texture face lengths should warn of corruption")
	}
}
