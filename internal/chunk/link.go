package chunk

// LinkMap maps a small integer link slot to the scene-index of the class
// instance it references. Slot 0 is conventionally a TM controller, slot 1
// an object/geometry, slots 2+ ancillary references.
type LinkMap map[uint32]uint32

// GetLink builds a LinkMap from the two link property encodings that can
// coexist on a chunk:
//
//   - type 0x2034 is an array of u32 read positionally: index i of the
//     array maps slot i to that value.
//   - type 0x2035 is an array of u32 where the first element is ignored
//     and the rest form (slot, target) pairs; each pair overrides the
//     positional entry for the same slot.
//
// GetLink is idempotent: calling it twice on the same chunk yields an
// equal map.
func GetLink(c *Chunk) LinkMap {
	links := LinkMap{}
	positional := U32(c, 0x2034)
	for slot, target := range positional {
		links[uint32(slot)] = target
	}
	pairs := U32(c, 0x2035)
	for i := 1; i+1 < len(pairs); i += 2 {
		links[pairs[i]] = pairs[i+1]
	}
	return links
}
