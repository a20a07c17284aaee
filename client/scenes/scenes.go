package scenes

import (
	"fmt"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/objects"
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is one full screen of the client. Game owns exactly one at a time
// and destroys it before initializing the next.
type Scene interface {
	objects.Lifecycle

	Root() objects.GameObject
}

// BaseScene drives an object tree. Scenes embed it and add their own UI on top.
type BaseScene struct {
	root objects.GameObject
}

func NewBaseScene(root objects.GameObject) *BaseScene {
	return &BaseScene{root: root}
}

func (s *BaseScene) Root() objects.GameObject {
	return s.root
}

// Add attaches child to the root of the scene.
func (s *BaseScene) Add(child objects.GameObject) error {
	if err := s.root.AddChild(child); err != nil {
		return fmt.Errorf("failed to add %s to scene: %v", child.GetID(), err)
	}
	return nil
}

func (s *BaseScene) Init() error {
	return objects.InitTree(s.root)
}

func (s *BaseScene) Destroy() error {
	return objects.DestroyTree(s.root)
}

func (s *BaseScene) Update() error {
	return objects.UpdateTree(s.root)
}

func (s *BaseScene) Draw(screen *ebiten.Image) {
	objects.DrawTree(s.root, screen)
}
