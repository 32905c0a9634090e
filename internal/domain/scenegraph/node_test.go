package scenegraph

import (
	"testing"

	"github.com/preston-bernstein/football-asset-generator/internal/domain/color"
)

func TestNodeChildren(t *testing.T) {
	root := NewNode("root")
	body := root.AddChild(NewNode("Body"))
	root.AddChild(NewNode("Head"))

	if root.Child("Body") != body {
		t.Fatal("expected to find Body child")
	}
	if root.Child("Missing") != nil {
		t.Fatal("expected nil for missing child")
	}
	if removed := root.ClearChildren(); removed != 2 {
		t.Fatalf("expected 2 removed, got %d", removed)
	}
	if len(root.Children) != 0 {
		t.Fatal("expected no children after clear")
	}
}

func TestRendererSetOverride(t *testing.T) {
	r := &Renderer{Primitive: PrimitiveSphere}
	r.SetOverride("_Color", color.Red)
	if r.Overrides["_Color"] != color.Red {
		t.Fatalf("expected override to be stored, got %+v", r.Overrides)
	}
}

func TestVec3Add(t *testing.T) {
	got := Vec3{X: 1, Y: 2, Z: 3}.Add(Vec3{X: -1, Y: 0, Z: 1})
	if got != (Vec3{X: 0, Y: 2, Z: 4}) {
		t.Fatalf("unexpected sum %+v", got)
	}
}
