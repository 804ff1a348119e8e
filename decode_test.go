// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package maxscene

import (
	"encoding/binary"
	"testing"

	"github.com/mbundle/maxscene/internal/cfb"
	"github.com/mbundle/maxscene/internal/ids"
)

func encodeChunk(typ uint16, body []byte, container bool) []byte {
	length := uint32(6 + len(body))
	if container {
		length |= 0x80000000
	}
	buf := make([]byte, 6+len(body))
	binary.LittleEndian.PutUint16(buf, typ)
	binary.LittleEndian.PutUint32(buf[2:], length)
	copy(buf[6:], body)
	return buf
}

func encodeU32(vals ...uint32) []byte {
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

func TestDecodeMinimalScene(t *testing.T) {
	classDataBody := encodeU32(0xFFFFFFFF, 0, 0, ids.SuperClassBaseNode)
	classDataLeaf := encodeChunk(ids.TagClassData, classDataBody, false)
	classEntry := encodeChunk(0x3000, classDataLeaf, true)

	nodeChunk := encodeChunk(0, nil, true)
	rootChunk := encodeChunk(0x200E, nodeChunk, true)

	streams := cfb.Streams{
		Scene:          rootChunk,
		ClassDirectory: classEntry,
	}

	scene, err := Decode(streams)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if scene.Name != "(Root)" {
		t.Fatalf("root name = %q, want (Root)", scene.Name)
	}
	if len(scene.Children) != 1 {
		t.Fatalf("got %d children, want 1", len(scene.Children))
	}
}

func TestDecodeEmptySceneFails(t *testing.T) {
	if _, err := Decode(cfb.Streams{}); err == nil {
		t.Fatal("Decode with an empty Scene stream should fail")
	}
}

func TestDecodeUnsupportedRootType(t *testing.T) {
	root := encodeChunk(0x0001, nil, true)
	if _, err := Decode(cfb.Streams{Scene: root}); err == nil {
		t.Fatal("Decode should reject a scene root type below the supported floor")
	}
}

func TestDecodeStrictSurfacesFirstWarning(t *testing.T) {
	// A node whose type has no ClassDirectory entry triggers a warning;
	// in Strict mode that warning becomes the returned error.
	nodeChunk := encodeChunk(0, nil, true)
	rootChunk := encodeChunk(0x200E, nodeChunk, true)
	streams := cfb.Streams{Scene: rootChunk}

	if _, err := Decode(streams, Strict()); err == nil {
		t.Fatal("Strict mode should surface the unresolved-class diagnostic as an error")
	}
}
