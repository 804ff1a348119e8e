package geometry

import (
	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/ids"
)

// Mesh is the decoded vertex and face data of an Editable Poly object.
//
// VertexArray and TextureArray are faces: VertexArray[f] lists the vertex
// indices of face f, TextureArray[f] the texture-coordinate indices of the
// same face. When both are present they are expected to describe the same
// faces in the same order (see the corruption check in DecodeEditablePoly);
// when only one is present the other is left nil.
type Mesh struct {
	Vertex      [][3]float32
	VertexArray [][]uint32
	Texture     [][3]float32
	TextureArray [][]uint32
}

// DecodeEditablePoly decodes an Editable Poly object's 0x08FE payload
// chunk into a Mesh.
//
// The vertex, texture and vertex-array streams each carry a leading field
// this decoder does not use (an edge/channel count, per the host
// application's internal layout) before the data of interest begins; the
// per-triple loops below read one element into that gap, which is a known
// quirk of the source this was ported from rather than a guess on our
// part, and is left as-is.
func DecodeEditablePoly(polyChunk *chunk.Chunk, warn func(format string, args ...any)) Mesh {
	var mesh Mesh

	vertex := chunk.F32(polyChunk, ids.TagPolyVertices)
	for i := 1; i+3 < len(vertex); i += 4 {
		mesh.Vertex = append(mesh.Vertex, [3]float32{vertex[i+1], vertex[i+2], vertex[1+3]})
	}

	vertexArray := chunk.U16(polyChunk, ids.TagPolyVertexFaces)
	mesh.VertexArray = decodeVertexFaceArray(vertexArray, warn)

	texture := chunk.F32(polyChunk, ids.TagPolyTexCoords)
	for i := 1; i+2 < len(texture); i += 3 {
		mesh.Texture = append(mesh.Texture, [3]float32{texture[i], texture[i+1], texture[1+2]})
	}

	textureArray := chunk.U32(polyChunk, ids.TagPolyTextureFaces)
	mesh.TextureArray = decodeCountPrefixedArray(textureArray, warn)

	if len(mesh.VertexArray) != 0 && len(mesh.TextureArray) != 0 {
		corrupted := len(mesh.VertexArray) != len(mesh.TextureArray)
		if !corrupted {
			for i := range mesh.VertexArray {
				if len(mesh.VertexArray[i]) != len(mesh.TextureArray[i]) {
					corrupted = true
					break
				}
			}
		}
		if corrupted {
			warn("Editable Poly is corrupted (%d:%d)", len(mesh.VertexArray), len(mesh.TextureArray))
		}
	}

	return mesh
}

// decodeVertexFaceArray decodes the 0x011A stream: a run of faces, each a
// count-prefixed list of vertex indices (stored as two uint16 words per
// index) followed by a one-word flag field. Some flag bits indicate extra
// per-face words that follow before the next face begins.
//
// Bit 0x20's extra-word count is `2 * (count - 6)`; count is the same
// doubled word count used to size the index list above, so a face with
// fewer than 3 indices makes count-6 go negative. The source computes this
// unsigned, which would walk off into the rest of the buffer. Rather than
// reproduce that, a count < 6 with bit 0x20 set is treated as corruption.
func decodeVertexFaceArray(vertexArray []uint16, warn func(format string, args ...any)) [][]uint32 {
	var out [][]uint32
	i := 2
	for i+1 < len(vertexArray) {
		count := int(uint32(vertexArray[i])|uint32(vertexArray[i+1])<<16) * 2
		if i+2+count+1 > len(vertexArray) {
			warn("Editable Poly is corrupted")
			break
		}
		i += 2
		var indices []uint32
		for j, end := i, i+count; j < end; j += 2 {
			indices = append(indices, uint32(vertexArray[j])|uint32(vertexArray[j+1])<<16)
		}
		out = append(out, indices)
		i += count

		flags := vertexArray[i]
		i++
		if flags&0x01 != 0 {
			i += 2
		}
		if flags&0x08 != 0 {
			i++
		}
		if flags&0x10 != 0 {
			i += 2
		}
		if flags&0x20 != 0 {
			if count < 6 {
				warn("Editable Poly is corrupted")
				break
			}
			i += 2 * (count - 6)
		}
	}
	return out
}

// decodeCountPrefixedArray decodes a run of count-prefixed index lists:
// one uint32 giving the list length, followed by that many indices.
func decodeCountPrefixedArray(stream []uint32, warn func(format string, args ...any)) [][]uint32 {
	var out [][]uint32
	i := 0
	for i < len(stream) {
		count := int(stream[i])
		if i+1+count > len(stream) {
			warn("Editable Poly is corrupted")
			break
		}
		i++
		out = append(out, append([]uint32{}, stream[i:i+count]...))
		i += count
	}
	return out
}
