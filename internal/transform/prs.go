// Package transform extracts a scene node's position, rotation and scale
// from its PRS (Position/Rotation/Scale) controller chunk.
package transform

import (
	"github.com/mbundle/maxscene/internal/chunk"
	"github.com/mbundle/maxscene/internal/classdir"
	"github.com/mbundle/maxscene/internal/ids"
	"github.com/mbundle/maxscene/internal/scenemath"
	"github.com/mbundle/maxscene/internal/scenepool"
)

// PRS is a decoded transform: translation, a unit orientation and a
// non-uniform scale factor.
type PRS struct {
	Position scenemath.V3
	Rotation scenemath.Q
	Scale    scenemath.V3
}

// Identity is the transform a node keeps when its PRS controller is
// missing or unrecognized: no translation, no rotation, unit scale.
func Identity() PRS {
	return PRS{Rotation: scenemath.QI, Scale: scenemath.V3{X: 1, Y: 1, Z: 1}}
}

// Decode reads the position, rotation and scale controllers hung off prs
// (a PRS_CONTROL-class chunk reached via a node's own link slot 0),
// resolving sub-controller references against pool as needed. A
// sub-controller of an unrecognized class, or one with no value, is
// reported through warn; a sub-controller link that is absent is skipped
// without a diagnostic. In every such case the corresponding field keeps
// its Identity value.
func Decode(pool *scenepool.Pool, prs *chunk.Chunk, warn func(format string, args ...any)) PRS {
	out := Identity()
	if !classdir.CheckClass(prs, ids.ClassPRSControl, ids.SuperClassPRSControl, warn) {
		return out
	}

	if c, ok := pool.GetLinkChunk(prs, 0); ok {
		decodePosition(pool, c, &out, warn)
	}
	if c, ok := pool.GetLinkChunk(prs, 1); ok {
		decodeRotation(pool, c, &out, warn)
	}
	if c, ok := pool.GetLinkChunk(prs, 2); ok {
		decodeScale(pool, c, &out, warn)
	}
	return out
}

func decodePosition(pool *scenepool.Pool, c *chunk.Chunk, out *PRS, warn func(format string, args ...any)) {
	if c.ClassData.SuperClassID != ids.SuperClassPosControl {
		classdir.CheckClass(c, ids.ClassID{}, 0, warn)
		return
	}

	if c.ClassData.ClassID == [2]uint32(ids.ClassIPosControl) {
		var axis [3]float32
		for i := uint32(0); i < 3; i++ {
			sub, ok := pool.GetLinkChunk(c, i)
			if !ok {
				continue
			}
			if !classdir.CheckClass(sub, ids.ClassHybridInterpFloat, ids.SuperClassHybridInterpFloat, warn) {
				continue
			}
			if v, ok := bezierFloat(sub); ok {
				axis[i] = v
			} else {
				warn("Value is not found (%s)", sub.ClassName)
			}
		}
		out.Position = scenemath.V3{X: axis[0], Y: axis[1], Z: axis[2]}
		return
	}

	if isDirectController(c.ClassData.ClassID, ids.ClassLinInterpPosition, ids.ClassHybridInterpPosition, ids.ClassTCBInterpPosition) {
		v := directValues(c)
		if len(v) >= 3 {
			out.Position = scenemath.V3{X: v[0], Y: v[1], Z: v[2]}
			return
		}
		warn("Value is not found (%s)", c.ClassName)
		return
	}
	classdir.CheckClass(c, ids.ClassID{}, 0, warn)
}

func decodeRotation(pool *scenepool.Pool, c *chunk.Chunk, out *PRS, warn func(format string, args ...any)) {
	if c.ClassData.SuperClassID != ids.SuperClassRotControl {
		classdir.CheckClass(c, ids.ClassID{}, 0, warn)
		return
	}

	if c.ClassData.ClassID == [2]uint32(ids.ClassHybridInterpPoint4) {
		var euler [3]float32
		for i := uint32(0); i < 3; i++ {
			sub, ok := pool.GetLinkChunk(c, i)
			if !ok {
				continue
			}
			if !classdir.CheckClass(sub, ids.ClassHybridInterpFloat, ids.SuperClassHybridInterpFloat, warn) {
				continue
			}
			if v, ok := bezierFloat(sub); ok {
				euler[i] = v
			} else {
				warn("Value is not found (%s)", sub.ClassName)
			}
		}
		out.Rotation = scenemath.EulerToQuat(euler[0], euler[1], euler[2])
		return
	}

	if isDirectController(c.ClassData.ClassID, ids.ClassLinInterpRotation, ids.ClassTCBInterpRotation) {
		v := directValues(c)
		if len(v) >= 4 {
			out.Rotation = scenemath.Q{X: v[0], Y: v[1], Z: v[2], W: v[3]}
			return
		}
		if len(v) >= 3 {
			out.Rotation = scenemath.EulerToQuat(v[0], v[1], v[2])
			return
		}
		warn("Value is not found (%s)", c.ClassName)
		return
	}
	classdir.CheckClass(c, ids.ClassID{}, 0, warn)
}

func decodeScale(pool *scenepool.Pool, c *chunk.Chunk, out *PRS, warn func(format string, args ...any)) {
	if c.ClassData.SuperClassID != ids.SuperClassScaleControl {
		classdir.CheckClass(c, ids.ClassID{}, 0, warn)
		return
	}

	if isDirectController(c.ClassData.ClassID, ids.ClassLinInterpScale, ids.ClassHybridInterpScale, ids.ClassTCBInterpScale) {
		v := directValues(c)
		if len(v) >= 3 {
			out.Scale = scenemath.V3{X: v[0], Y: v[1], Z: v[2]}
			return
		}
		if len(v) >= 1 {
			out.Scale = scenemath.V3{X: v[0], Y: v[0], Z: v[0]}
			return
		}
		warn("Value is not found (%s)", c.ClassName)
		return
	}
	classdir.CheckClass(c, ids.ClassID{}, 0, warn)
}

// bezierFloat reads a single HYBRIDINTERP_FLOAT sub-controller's value,
// unwrapping the 0x7127 value-container chunk it is typically kept in.
// The value itself is carried under one of four tags depending on the
// controller's role (position, rotation angle, percentage, or world
// unit); the first one present is used.
func bezierFloat(c *chunk.Chunk) (float32, bool) {
	c = unwrapValueContainer(c)
	v := chunk.F32(c, ids.TagFloat2501, ids.TagFloat2503, ids.TagFloat2504, ids.TagFloat2505)
	if len(v) == 0 {
		return 0, false
	}
	return v[0], true
}

// directValues reads the literal value a Linear/TCB controller stores
// directly as a float property, again unwrapping 0x7127 when present.
func directValues(c *chunk.Chunk) []float32 {
	c = unwrapValueContainer(c)
	return chunk.F32(c, ids.TagFloat2501, ids.TagFloat2503, ids.TagFloat2504, ids.TagFloat2505)
}

func unwrapValueContainer(c *chunk.Chunk) *chunk.Chunk {
	if wrapped, ok := chunk.Get(c, ids.TagValueContainer); ok {
		return wrapped
	}
	return c
}

func isDirectController(classID [2]uint32, candidates ...ids.ClassID) bool {
	for _, want := range candidates {
		if classID == [2]uint32(want) {
			return true
		}
	}
	return false
}
