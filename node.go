// Copyright © 2013-2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package maxscene

import (
	"github.com/mbundle/maxscene/internal/geometry"
	"github.com/mbundle/maxscene/internal/hierarchy"
	"github.com/mbundle/maxscene/internal/scenemath"
	"github.com/mbundle/maxscene/internal/transform"
)

// SceneNode is one node of the decoded scene graph: a named point of view
// (position, rotation, scale) with an optional geometry payload and a
// parent-ordered list of children.
//
// The root SceneNode returned by Decode is synthetic: it carries the
// identity transform and no geometry, and exists only to give every scene
// node, including ones whose declared parent was never found, somewhere
// to attach.
type SceneNode struct {
	Name     string
	Parent   *SceneNode
	Children []*SceneNode

	Position scenemath.V3
	Rotation scenemath.Q
	Scale    scenemath.V3

	// Text is the human-readable parameter dump the original reader
	// attaches to a node (primitive kind and dimensions, or an Editable
	// Poly's element counts).
	Text string

	// Geometry, populated only for nodes whose linked object resolved to
	// a supported primitive or mesh.
	Vertex       [][3]float32
	VertexArray  [][]uint32
	Texture      [][3]float32
	TextureArray [][]uint32
	Normal       [][3]float32
	VertexColor  [][3]float32
	VertexAlpha  [][3]float32
}

func newRoot() *SceneNode {
	return &SceneNode{
		Name:     "(Root)",
		Rotation: scenemath.QI,
		Scale:    scenemath.V3{X: 1, Y: 1, Z: 1},
	}
}

// Walk calls fn for n and every descendant, parent before children.
func (n *SceneNode) Walk(fn func(*SceneNode)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}

// The methods below satisfy internal/hierarchy.Node, letting the
// hierarchy assembler build a *SceneNode tree without itself knowing
// this package's concrete type.

// SetName implements hierarchy.Node.
func (n *SceneNode) SetName(name string) { n.Name = name }

// SetText implements hierarchy.Node. It overwrites rather than appends:
// a node's own descriptor text, when present, supersedes whatever text
// its geometry extraction produced.
func (n *SceneNode) SetText(text string) { n.Text = text }

// SetTransform implements hierarchy.Node.
func (n *SceneNode) SetTransform(prs transform.PRS) {
	n.Position = prs.Position
	n.Rotation = prs.Rotation
	n.Scale = prs.Scale
}

// SetGeometry implements hierarchy.Node.
func (n *SceneNode) SetGeometry(g geometry.Result) {
	n.Text = g.Text
	n.Vertex = g.Vertex
	n.VertexArray = g.VertexArray
	n.Texture = g.Texture
	n.TextureArray = g.TextureArray
	n.Normal = g.Normal
	n.VertexColor = g.VertexColor
	n.VertexAlpha = g.VertexAlpha
}

// AddChild implements hierarchy.Node.
func (n *SceneNode) AddChild(name string) hierarchy.Node {
	child := &SceneNode{
		Name:     name,
		Parent:   n,
		Rotation: scenemath.QI,
		Scale:    scenemath.V3{X: 1, Y: 1, Z: 1},
	}
	n.Children = append(n.Children, child)
	return child
}
