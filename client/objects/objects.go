package objects

import (
	"fmt"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Lifecycle is driven once per frame by the owning scene.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is a node in a scene's draw tree.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetChildren() []GameObject
	AddChild(child GameObject) error
}

// BaseObject implements the tree plumbing shared by every object.
type BaseObject struct {
	ID       string
	ZIndex   int
	children []GameObject
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings when drawing; lower draws first.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{ID: id}
	if opts != nil {
		o.ZIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) GetID() string {
	return o.ID
}

func (o *BaseObject) GetZIndex() int {
	return o.ZIndex
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children
}

func (o *BaseObject) AddChild(child GameObject) error {
	for _, c := range o.children {
		if c.GetID() == child.GetID() {
			return fmt.Errorf("child %s already exists in %s", child.GetID(), o.ID)
		}
	}
	o.children = append(o.children, child)
	sort.SliceStable(o.children, func(i, j int) bool {
		return o.children[i].GetZIndex() < o.children[j].GetZIndex()
	})
	return nil
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

// InitTree initializes root and then its children.
func InitTree(root GameObject) error {
	if err := root.Init(); err != nil {
		return fmt.Errorf("failed to init %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys children before their parent.
func DestroyTree(root GameObject) error {
	for _, child := range root.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := root.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", root.GetID(), err)
	}
	return nil
}

func UpdateTree(root GameObject) error {
	if err := root.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws root first, then its children by z-index.
func DrawTree(root GameObject, screen *ebiten.Image) {
	root.Draw(screen)
	for _, child := range root.GetChildren() {
		DrawTree(child, screen)
	}
}
