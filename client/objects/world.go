package objects

import (
	"time"

	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/client/render"
	gametypes "github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/game/types"
	"github.com/LaibaSiddique-GW/Puzzle-Hackathon-ACM/pkg/tick"
	"github.com/hajimehoshi/ebiten/v2"
)

// WorldObject drives the tick scheduler once per drawn frame and paints the
// world state it hands back.
type WorldObject struct {
	*BaseObject

	scheduler *tick.Scheduler
	renderer  *render.Renderer
	now       func() time.Time
}

type NewWorldObjectOptions struct {
	Scheduler *tick.Scheduler
	Renderer  *render.Renderer
}

func NewWorldObject(id string, opts NewWorldObjectOptions) *WorldObject {
	return &WorldObject{
		BaseObject: NewBaseObject(id, nil),
		scheduler:  opts.Scheduler,
		renderer:   opts.Renderer,
		now:        time.Now,
	}
}

func (o *WorldObject) Draw(screen *ebiten.Image) {
	o.scheduler.Frame(o.now(), func(ws *gametypes.WorldState) {
		o.renderer.Draw(screen, ws)
	})
}
