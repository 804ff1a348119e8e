package geometry

import (
	"fmt"
	"sort"

	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/ids"
	"github.com/mbundle/maxscene/internal/scenepool"
)

// Result accumulates everything DecodeObject can discover about a scene
// node's geometry: the primitive or mesh data of the object itself, plus
// whatever per-vertex data its object-space modifiers layer on top.
type Result struct {
	Text         string
	Vertex       [][3]float32
	VertexArray  [][]uint32
	Texture      [][3]float32
	TextureArray [][]uint32
	Normal       [][3]float32
	VertexColor  [][3]float32
	VertexAlpha  [][3]float32
}

// DecodeObject extracts the geometry referenced by target, which is either
// a geometry object directly or an object-space modifier container (chunk
// type 0x2032) wrapping one. Modifier containers are walked recursively:
// a cascade of modifiers layered on the same base object all contribute
// to the same Result.
func DecodeObject(pool *scenepool.Pool, target *chunk.Chunk, warn func(format string, args ...any)) Result {
	var out Result
	decodeObject(pool, target, &out, warn)
	return out
}

func decodeObject(pool *scenepool.Pool, target *chunk.Chunk, out *Result, warn func(format string, args ...any)) {
	if target.ClassData.SuperClassID != ids.SuperClassGeomObject {
		if target.Type != ids.TagObjectRefContainer {
			return
		}
		decodeModifierContainer(pool, target, out, warn)
		return
	}

	paramChunk, ok := pool.GetLinkChunk(target, 0)
	if !ok {
		return
	}
	paramBlock := ParamBlock(paramChunk)

	if prim, ok := DecodePrimitive(ids.ClassID(target.ClassData.ClassID), paramBlock); ok {
		out.Text += prim.Text
		out.Vertex = append(out.Vertex, prim.Vertex...)
		return
	}

	if target.ClassData.ClassID == [2]uint32(ids.ClassEditPoly) {
		polyChunk, ok := chunk.Get(target, ids.TagPolyPayload)
		if !ok {
			return
		}
		mesh := DecodeEditablePoly(polyChunk, warn)
		out.Vertex = append(out.Vertex, mesh.Vertex...)
		out.VertexArray = append(out.VertexArray, mesh.VertexArray...)
		out.Texture = append(out.Texture, mesh.Texture...)
		out.TextureArray = append(out.TextureArray, mesh.TextureArray...)

		out.Text += fmt.Sprintf("Primitive : Editable Poly\n"+
			"Vertex : %d\nTexture : %d\nNormal : %d\nVertex Color : %d\nVertex Alpha : %d\n"+
			"Vertex Array : %d (%d)\nTexture Array : %d (%d)\n",
			len(out.Vertex), len(out.Texture), len(out.Normal), len(out.VertexColor), len(out.VertexAlpha),
			len(out.VertexArray), countTotal(out.VertexArray), len(out.TextureArray), countTotal(out.TextureArray))
		return
	}
	// Editable Mesh and any other geometry class contribute nothing to
	// Result: tessellated mesh formats besides Editable Poly are out of
	// scope.
}

// decodeModifierContainer walks an object-space modifier container's link
// table. Each link either names another object-space modifier layered on
// the same base object (recursed into decodeModifier) or the base object
// itself (recursed into decodeObject). Links are visited in slot order so
// that a stack of modifiers contributes to Result deterministically.
func decodeModifierContainer(pool *scenepool.Pool, container *chunk.Chunk, out *Result, warn func(format string, args ...any)) {
	links := chunk.GetLink(container)
	slots := make([]uint32, 0, len(links))
	for slot := range links {
		slots = append(slots, slot)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })

	for _, linkIndex := range slots {
		target, ok := pool.At(links[linkIndex])
		if !ok || target == container {
			continue
		}
		if target.ClassData.SuperClassID == ids.SuperClassOSModifier {
			decodeModifier(pool, container, target, linkIndex, out, warn)
			continue
		}
		decodeObject(pool, target, out, warn)
	}
}

// decodeModifier extracts one object-space modifier's contribution. The
// modifier's per-instance data chunk is found positionally: it is the
// linkIndex'th 0x2500 child of the container, not of the modifier itself.
func decodeModifier(pool *scenepool.Pool, container, modifier *chunk.Chunk, linkIndex uint32, out *Result, warn func(format string, args ...any)) {
	var objectChunk *chunk.Chunk
	var index uint32
	for _, child := range container.Children {
		if child.Type != ids.TagModifierData {
			continue
		}
		if index == linkIndex {
			objectChunk = child
			break
		}
		index++
	}
	if objectChunk == nil {
		return
	}

	paramChunk, ok := pool.GetLinkChunk(modifier, 0)
	if !ok {
		return
	}
	paramBlock := ParamBlock(paramChunk)

	switch modifier.ClassData.ClassID {
	case [2]uint32(ids.ClassEditNormals):
		out.Normal = append(out.Normal, DecodeNormals(objectChunk)...)
	case [2]uint32(ids.ClassPaintLayerMod):
		if layer, ok := DecodePaintLayer(objectChunk, paramBlock); ok {
			if layer.VertexColor != nil {
				out.VertexColor = layer.VertexColor
			}
			if layer.VertexAlpha != nil {
				out.VertexAlpha = layer.VertexAlpha
			}
		}
	}
}

func countTotal(arrays [][]uint32) int {
	total := 0
	for _, a := range arrays {
		total += len(a)
	}
	return total
}
