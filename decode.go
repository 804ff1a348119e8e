// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package maxscene decodes a proprietary 3D scene container's Scene,
// ClassDirectory, DllDirectory and related streams into an in-memory
// SceneNode tree.
//
// Reading the container itself (a Compound File Binary archive) and
// gzip-decompressing its streams are the only steps outside this
// package's scope; see internal/cfb for the seam where the caller's own
// CFB reader feeds in. Everything from chunk parsing onward is handled
// here.
package maxscene

import (
	"fmt"

	"github.com/mbundle/maxscene/internal/cfb"
	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/classdir"
	"github.com/mbundle/maxscene/internal/hierarchy"
)

// DecodeError reports a single non-fatal diagnostic raised during a
// Strict decode: an unresolved class, a missing link target, a corrupted
// face array, or an unresolved parent index. See Strict.
type DecodeError struct {
	Message string
}

func (e *DecodeError) Error() string { return e.Message }

// Decode builds a SceneNode tree from a container's already-extracted,
// already-decompressed streams. The Scene stream's root chunk type is
// checked against the set of container versions this decoder recognizes;
// every other stream is optional and treated as empty when absent.
func Decode(streams cfb.Streams, attrs ...Attr) (*SceneNode, error) {
	cfg := configDefaults
	for _, a := range attrs {
		a(&cfg)
	}

	var firstErr error
	warn := func(format string, args ...any) {
		msg := fmt.Sprintf(format, args...)
		cfg.logf("%s", msg)
		if cfg.strict && firstErr == nil {
			firstErr = &DecodeError{Message: msg}
		}
	}

	sceneTop := chunk.Parse(streams.Scene)
	if len(sceneTop) == 0 {
		return nil, fmt.Errorf("maxscene: scene is empty")
	}
	root := sceneTop[0]
	if !classdir.SceneRootSupported(root.Type) {
		return nil, fmt.Errorf("maxscene: scene type %04X is not supported", root.Type)
	}

	classDirectory := chunk.Parse(streams.ClassDirectory)
	dllDirectory := chunk.Parse(streams.DllDirectory)

	result := newRoot()
	hierarchy.Assemble(result, root.Children, classDirectory, dllDirectory, warn)

	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}
