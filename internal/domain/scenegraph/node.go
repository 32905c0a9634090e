// Package scenegraph models the minimal scene tree the generator writes:
// named nodes with a transform and a handful of optional components.
package scenegraph

import "github.com/preston-bernstein/football-asset-generator/internal/domain/color"

// Vec3 is a position, scale or offset in metres.
type Vec3 struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// One is the unit scale.
var One = Vec3{X: 1, Y: 1, Z: 1}

// Primitive mesh shapes.
const (
	PrimitiveSphere = "sphere"
)

// Renderer draws a primitive mesh. Overrides are per-renderer material
// property values applied on top of the shared material.
type Renderer struct {
	Primitive string                 `json:"primitive" yaml:"primitive"`
	Overrides map[string]color.Color `json:"overrides,omitempty" yaml:"overrides,omitempty"`
}

// SetOverride records a per-renderer colour property.
func (r *Renderer) SetOverride(property string, c color.Color) {
	if r.Overrides == nil {
		r.Overrides = make(map[string]color.Color)
	}
	r.Overrides[property] = c
}

// CapsuleCollider is the single physics shape on a player root.
type CapsuleCollider struct {
	Center Vec3    `json:"center" yaml:"center"`
	Height float64 `json:"height" yaml:"height"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// PlayerVisual binds a player definition to the body and head renderers of
// the children it names.
type PlayerVisual struct {
	Body       string `json:"body" yaml:"body"`
	Head       string `json:"head" yaml:"head"`
	Definition string `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// Node is one object in the scene tree.
type Node struct {
	Name     string           `json:"name" yaml:"name"`
	Position Vec3             `json:"position" yaml:"position"`
	Scale    Vec3             `json:"scale" yaml:"scale"`
	Renderer *Renderer        `json:"renderer,omitempty" yaml:"renderer,omitempty"`
	Collider *CapsuleCollider `json:"collider,omitempty" yaml:"collider,omitempty"`
	Visual   *PlayerVisual    `json:"visual,omitempty" yaml:"visual,omitempty"`
	Children []*Node          `json:"children,omitempty" yaml:"children,omitempty"`
}

// NewNode returns an empty node at the origin with unit scale.
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: One}
}

// AddChild appends child and returns it.
func (n *Node) AddChild(child *Node) *Node {
	n.Children = append(n.Children, child)
	return child
}

// Child returns the direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	if n == nil {
		return nil
	}
	for _, c := range n.Children {
		if c != nil && c.Name == name {
			return c
		}
	}
	return nil
}

// ClearChildren detaches every child and returns how many were removed.
func (n *Node) ClearChildren() int {
	removed := len(n.Children)
	n.Children = nil
	return removed
}
