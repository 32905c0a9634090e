package prefabs

import "github.com/preston-bernstein/football-asset-generator/internal/domain/scenegraph"

// Child names the snowman's PlayerVisual binds to.
const (
	BodyName = "Body"
	HeadName = "Head"

	snowmanRootName = "SnowmanPlayer"
)

// Prefab is a reusable node template shared by every player that references
// it.
type Prefab struct {
	GUID string           `json:"guid"`
	Name string           `json:"name"`
	Root *scenegraph.Node `json:"root"`
}

// NewSnowman builds the placeholder player: a capsule collider on the root
// and two sphere children with no colliders of their own.
func NewSnowman() *Prefab {
	root := scenegraph.NewNode(snowmanRootName)

	body := scenegraph.NewNode(BodyName)
	body.Position = scenegraph.Vec3{Y: 0.5}
	body.Renderer = &scenegraph.Renderer{Primitive: scenegraph.PrimitiveSphere}
	root.AddChild(body)

	head := scenegraph.NewNode(HeadName)
	head.Scale = scenegraph.Vec3{X: 0.6, Y: 0.6, Z: 0.6}
	head.Position = scenegraph.Vec3{Y: 1.3}
	head.Renderer = &scenegraph.Renderer{Primitive: scenegraph.PrimitiveSphere}
	root.AddChild(head)

	root.Collider = &scenegraph.CapsuleCollider{
		Center: scenegraph.Vec3{Y: 1.0},
		Height: 2.0,
		Radius: 0.4,
	}
	root.Visual = &scenegraph.PlayerVisual{Body: BodyName, Head: HeadName}

	return &Prefab{Name: snowmanRootName, Root: root}
}
