package chunk

import (
	"encoding/binary"
	"testing"
)

func u32Payload(values ...uint32) []byte {
	buf := make([]byte, len(values)*4)
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

func TestGetLinkPositional(t *testing.T) {
	c := &Chunk{Children: []*Chunk{
		{Type: 0x2034, Payload: u32Payload(10, 11, 12)},
	}}
	links := GetLink(c)
	want := LinkMap{0: 10, 1: 11, 2: 12}
	if len(links) != len(want) {
		t.Fatalf("got %v, want %v", links, want)
	}
	for k, v := range want {
		if links[k] != v {
			t.Fatalf("slot %d: got %d, want %d", k, links[k], v)
		}
	}
}

func TestGetLinkPairsOverridePositional(t *testing.T) {
	c := &Chunk{Children: []*Chunk{
		{Type: 0x2034, Payload: u32Payload(10, 11, 12)},
		// first element ignored, then (slot, target) pairs.
		{Type: 0x2035, Payload: u32Payload(0, 1, 99)},
	}}
	links := GetLink(c)
	if links[1] != 99 {
		t.Fatalf("pair override not applied: got %d, want 99", links[1])
	}
	if links[0] != 10 {
		t.Fatalf("untouched slot changed: got %d, want 10", links[0])
	}
}

func TestGetLinkIdempotent(t *testing.T) {
	c := &Chunk{Children: []*Chunk{
		{Type: 0x2034, Payload: u32Payload(1, 2, 3)},
		{Type: 0x2035, Payload: u32Payload(0, 2, 42)},
	}}
	a := GetLink(c)
	b := GetLink(c)
	if len(a) != len(b) {
		t.Fatalf("link maps differ in size: %v vs %v", a, b)
	}
	for k, v := range a {
		if b[k] != v {
			t.Fatalf("link maps differ at slot %d: %d vs %d", k, v, b[k])
		}
	}
}
