// Package scenepool gives the Scene stream's top-level siblings stable,
// index-addressable identity, and walks the link graph between them.
//
// A scene chunk references another by scene index, not by pointer, so every
// hop re-reads the chunk at that index and rebuilds its link map fresh: the
// graph is not assumed to be a tree, and a link target is free to be decided
// by data the caller has not seen yet.
package scenepool

import "github.com/mbundle/maxscene/internal/chunk"

// Pool is the ordered, index-addressable set of top-level chunks parsed
// from a Scene stream.
type Pool struct {
	Chunks []*chunk.Chunk
}

// New wraps the top-level siblings of a parsed Scene stream.
func New(sceneChunks []*chunk.Chunk) *Pool {
	return &Pool{Chunks: sceneChunks}
}

// At returns the chunk at scene index i, or false if i is out of range.
func (p *Pool) At(i uint32) (*chunk.Chunk, bool) {
	if p == nil || i >= uint32(len(p.Chunks)) {
		return nil, false
	}
	return p.Chunks[i], true
}

// GetLinkChunk walks slots as a path of link hops starting at c: at each
// step it rebuilds c's link map, follows slots[0] to the next scene index,
// resolves that index against the pool, and repeats with the remaining
// slots. It returns the chunk reached after following every slot, or false
// if any hop has no target or the target index is out of range.
func (p *Pool) GetLinkChunk(c *chunk.Chunk, slots ...uint32) (*chunk.Chunk, bool) {
	cur := c
	for _, slot := range slots {
		links := chunk.GetLink(cur)
		target, ok := links[slot]
		if !ok {
			return nil, false
		}
		next, ok := p.At(target)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
