package geometry

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/ids"
)

func vec3Payload(triples ...[3]float32) []byte {
	buf := make([]byte, 12*len(triples))
	for i, t := range triples {
		off := i * 12
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(t[0]))
		binary.LittleEndian.PutUint32(buf[off+4:], math.Float32bits(t[1]))
		binary.LittleEndian.PutUint32(buf[off+8:], math.Float32bits(t[2]))
	}
	return buf
}

func normalsChunk(tag uint16, triples []byte) *chunk.Chunk {
	return &chunk.Chunk{Children: []*chunk.Chunk{
		{Type: ids.TagEditNormalsBlock, Children: []*chunk.Chunk{
			{Type: tag, Children: []*chunk.Chunk{
				{Type: ids.TagModifierTriples, Payload: triples},
			}},
		}},
	}}
}

func TestDecodeNormalsGapBug(t *testing.T) {
	obj := normalsChunk(ids.TagNormalsA, f32Triples(0, [3]float32{1, 2, 3}))
	out := DecodeNormals(obj)
	if len(out) != 1 {
		t.Fatalf("got %d normals, want 1", len(out))
	}
	if out[0] != [3]float32{1, 2, 3} {
		t.Errorf("got %v, want {1,2,3}: normals[1], normals[2] and the literal normals[1+2]", out[0])
	}
}

func TestDecodeNormalsFallsBackToB(t *testing.T) {
	obj := normalsChunk(ids.TagNormalsB, f32Triples(0, [3]float32{4, 5, 6}))
	out := DecodeNormals(obj)
	if len(out) != 1 {
		t.Fatalf("got %d normals, want 1", len(out))
	}
}

func TestDecodeNormalsMissing(t *testing.T) {
	if out := DecodeNormals(&chunk.Chunk{}); out != nil {
		t.Fatalf("got %v, want nil when no normals block is present", out)
	}
}

func colorChunk(triples []byte) *chunk.Chunk {
	return &chunk.Chunk{Children: []*chunk.Chunk{
		{Type: ids.TagEditNormalsBlock, Children: []*chunk.Chunk{
			{Type: ids.TagModifierTriples, Payload: triples},
		}},
	}}
}

func TestDecodePaintLayerVertexColor(t *testing.T) {
	obj := colorChunk(f32Triples0(1, 2, 3))
	layer, ok := DecodePaintLayer(obj, []ParamValue{{}, {Int: 0}})
	if !ok {
		t.Fatal("DecodePaintLayer should succeed with a 2-entry param block")
	}
	if len(layer.VertexColor) != 1 || len(layer.VertexAlpha) != 0 {
		t.Fatalf("got %+v, want one vertex color and no alpha", layer)
	}
}

func TestDecodePaintLayerVertexAlpha(t *testing.T) {
	obj := colorChunk(f32Triples0(1, 2, 3))
	layer, ok := DecodePaintLayer(obj, []ParamValue{{}, {Int: -2}})
	if !ok {
		t.Fatal("DecodePaintLayer should succeed")
	}
	if len(layer.VertexAlpha) != 1 || len(layer.VertexColor) != 0 {
		t.Fatalf("got %+v, want one vertex alpha and no color", layer)
	}
}

func TestDecodePaintLayerIllumination(t *testing.T) {
	obj := colorChunk(f32Triples0(1, 2, 3))
	layer, ok := DecodePaintLayer(obj, []ParamValue{{}, {Int: -1}})
	if !ok {
		t.Fatal("DecodePaintLayer should succeed")
	}
	if len(layer.VertexAlpha) != 0 || len(layer.VertexColor) != 0 {
		t.Fatalf("got %+v, want neither color nor alpha surfaced for illumination", layer)
	}
}

func TestDecodePaintLayerShortParamBlock(t *testing.T) {
	if _, ok := DecodePaintLayer(&chunk.Chunk{}, []ParamValue{{}}); ok {
		t.Fatal("DecodePaintLayer should fail with a param block shorter than 2 entries")
	}
}

// f32Triples0 packs plain (f32,f32,f32) triples with no leading gap word,
// matching chunk.Vec3's reading (unlike the 0x0110 stream read by
// DecodeNormals via chunk.F32, which does have the gap).
func f32Triples0(x, y, z float32) []byte {
	return vec3Payload([3]float32{x, y, z})
}
