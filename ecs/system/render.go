package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/boxplatformer/ecs"
	"github.com/milk9111/boxplatformer/ecs/component"
	"github.com/milk9111/boxplatformer/physics"
)

// RenderSystem clears the screen and fills every obstacle, then every body.
type RenderSystem struct {
	Background color.Color
	Scale      float64
}

func NewRenderSystem(background color.Color, scale float64) *RenderSystem {
	if scale <= 0 {
		scale = 1
	}
	return &RenderSystem{Background: background, Scale: scale}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	screen.Fill(r.Background)

	ecs.ForEach2(w, component.ObstacleComponent.Kind(), component.FillComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle, f *component.Fill) {
		r.fillRect(screen, o.Shape, f.Color)
	})
	ecs.ForEach2(w, component.BodyComponent.Kind(), component.FillComponent.Kind(), func(_ ecs.Entity, b *component.Body, f *component.Fill) {
		r.fillRect(screen, b.Shape, f.Color)
	})
}

func (r *RenderSystem) fillRect(screen *ebiten.Image, s physics.Shape, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(s.X*r.Scale), float32(s.Y*r.Scale),
		float32(s.Width*r.Scale), float32(s.Height*r.Scale),
		c, false)
}
