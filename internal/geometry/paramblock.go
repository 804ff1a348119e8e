// Package geometry extracts primitive and mesh data from a scene node's
// object-reference chunk: the object's parameter block, the Editable Poly
// vertex/face streams, and the object-space modifiers layered on top of it.
package geometry

import (
	"encoding/binary"
	"math"

	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/ids"
)

// ParamValue is one entry of a decoded parameter block. At most one of its
// fields is meaningful for any given entry; which one depends on which
// property type the source chunk carried, not on any fixed schema (the
// param block layout is per-class and this package only ever reads a
// handful of known entries by position).
type ParamValue struct {
	Float float32
	Int   int32
	Point [3]float32
}

// ParamBlock decodes the parameter block rooted at blockChunk, dispatching
// on its own super class ID since a class instance's param block can be
// encoded in either of two incompatible layouts (v1 and v2, named
// ParamBlock and ParamBlock2 by the host application).
func ParamBlock(blockChunk *chunk.Chunk) []ParamValue {
	switch blockChunk.ClassData.SuperClassID {
	case ids.SuperClassParamBlockV1:
		return paramBlockV1(blockChunk)
	case ids.SuperClassParamBlockV2:
		return paramBlockV2(blockChunk)
	default:
		return nil
	}
}

// paramBlockV1 decodes the older, count-prefixed layout: a 0x0001 leaf
// gives the element count, and each 0x0002 child contributes one entry
// whose float/int/point fields are set from whichever typed property
// that child happens to carry.
func paramBlockV1(blockChunk *chunk.Chunk) []ParamValue {
	counts := chunk.I32(blockChunk, ids.TagParamBlockCount)
	if len(counts) == 0 {
		return nil
	}
	count := int(counts[0])

	var out []ParamValue
	for _, child := range blockChunk.Children {
		if child.Type != ids.TagParamBlockItemV1 {
			continue
		}
		var v ParamValue
		if f := chunk.F32(child, ids.TagParamItemFloat); len(f) > 0 {
			v.Float = f[0]
		}
		if i := chunk.I32(child, ids.TagParamItemInt); len(i) > 0 {
			v.Int = i[0]
		}
		if p := chunk.Vec3(child, ids.TagParamItemRGBA); len(p) > 0 {
			v.Point = p[0]
		}
		if p := chunk.Vec3(child, ids.TagParamItemPoint3); len(p) > 0 {
			v.Point = p[0]
		}
		if b := chunk.Bool(child, ids.TagParamItemBool); len(b) > 0 {
			if b[0] {
				v.Int = 1
			}
		}
		out = append(out, v)
		if len(out) >= count {
			break
		}
	}
	return out
}

// paramBlockV2 decodes the newer, sparse layout: every entry is a
// self-describing child carrying its own index and a type code, with the
// value itself always stored at a fixed byte offset. Entries can arrive in
// any order and with gaps, so the output is addressed by resizing to fit
// the highest index seen rather than by append.
func paramBlockV2(blockChunk *chunk.Chunk) []ParamValue {
	var out []ParamValue
	for _, child := range blockChunk.Children {
		if child.Type != ids.TagParamBlockItemV2a && child.Type != ids.TagParamBlockItemV2b {
			continue
		}
		p := child.Payload
		if len(p) < 19 {
			continue
		}
		index := int(binary.LittleEndian.Uint16(p[0:]))
		typ := binary.LittleEndian.Uint32(p[2:])
		if index >= len(out) {
			grown := make([]ParamValue, index+1)
			copy(grown, out)
			out = grown
		}
		switch typ {
		case 0, 5, 6, 7: // TYPE_FLOAT, TYPE_ANGLE, TYPE_PCNT_FRAC, TYPE_WORLD
			out[index].Float = math.Float32frombits(binary.LittleEndian.Uint32(p[15:]))
		case 1, 4: // TYPE_INT, TYPE_BOOL
			out[index].Int = int32(binary.LittleEndian.Uint32(p[15:]))
		case 2, 3: // TYPE_RGBA, TYPE_POINT3
			if len(p) < 27 {
				continue
			}
			out[index].Point = [3]float32{
				math.Float32frombits(binary.LittleEndian.Uint32(p[15:])),
				math.Float32frombits(binary.LittleEndian.Uint32(p[19:])),
				math.Float32frombits(binary.LittleEndian.Uint32(p[23:])),
			}
		}
	}
	return out
}
