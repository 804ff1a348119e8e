// Package hierarchy assembles the decoded scene-node tree from a resolved
// Scene stream: one pass resolves every top-level chunk's class identity,
// a second walks the BASENODE-superclass chunks in scene order and attaches
// each one, transformed and geometried, to its parent.
package hierarchy

import (
	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/classdir"
	"github.com/mbundle/maxscene/internal/geometry"
	"github.com/mbundle/maxscene/internal/ids"
	"github.com/mbundle/maxscene/internal/scenepool"
	"github.com/mbundle/maxscene/internal/strcoder"
	"github.com/mbundle/maxscene/internal/transform"
)

// Node is the caller's scene-node representation; hierarchy only builds
// the tree shape and fills a Node's fields, it does not define the type
// itself, so the same assembler serves any tree-shaped consumer.
type Node interface {
	SetName(name string)
	SetText(text string)
	SetTransform(prs transform.PRS)
	SetGeometry(g geometry.Result)
	AddChild(name string) Node
}

// Assemble decorates sceneChunks in place against classDirectory and
// dllDirectory (see classdir.Decorate), then walks every BASENODE-class
// chunk in ascending scene-index order, building the tree under root.
//
// A node's declared parent index must already have been attached by the
// time it is encountered for its attachment to succeed; a parent index
// pointing at a chunk not yet processed, or not itself a BASENODE, is
// reported through warn and the node is attached to root instead. Since
// the source format enumerates scene chunks in a parent-before-child
// order, this is expected to only ever trigger on malformed input.
func Assemble(root Node, sceneChunks, classDirectory, dllDirectory []*chunk.Chunk, warn func(format string, args ...any)) {
	classdir.Decorate(sceneChunks, classDirectory, dllDirectory, warn)
	pool := scenepool.New(sceneChunks)

	resolved := map[uint32]Node{}
	for i, c := range sceneChunks {
		if c.ClassData.SuperClassID != ids.SuperClassBaseNode {
			continue
		}

		parent := root
		if parentIdx, ok := singleU32(chunk.U32(c, ids.TagParentIndex)); ok {
			if found, ok := resolved[parentIdx]; ok {
				parent = found
			} else {
				warn("Parent %d is not found! (Chunk:%d)", parentIdx, i)
			}
		}

		name := c.ClassName
		if utf16 := chunk.U16(c, ids.TagNodeName); len(utf16) > 0 {
			name = strcoder.FromUTF16(utf16)
		}
		node := parent.AddChild(name)

		if prsChunk, ok := pool.GetLinkChunk(c, 0); ok {
			node.SetTransform(transform.Decode(pool, prsChunk, warn))
		}
		if objChunk, ok := pool.GetLinkChunk(c, 1); ok {
			node.SetGeometry(geometry.DecodeObject(pool, objChunk, warn))
		}

		if text := chunk.U16(c, ids.TagDescriptorText); len(text) > 0 {
			node.SetText(strcoder.FromUTF16(text))
		}

		resolved[uint32(i)] = node
	}
}

func singleU32(v []uint32) (uint32, bool) {
	if len(v) == 0 {
		return 0, false
	}
	return v[0], true
}
