package system

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/boxplatformer/ecs"
	"github.com/milk9111/boxplatformer/ecs/component"
)

var (
	debugOutline  = color.RGBA{R: 0x20, G: 0xa0, B: 0xff, A: 0xff}
	boundsOutline = color.RGBA{R: 0xff, G: 0xa0, B: 0x20, A: 0xff}
)

// DrawPhysicsDebug outlines the level bounds and obstacles and marks body
// centers.
func DrawPhysicsDebug(w *ecs.World, screen *ebiten.Image, scale float64) {
	if w == nil || screen == nil {
		return
	}

	ecs.ForEach(w, component.LevelBoundsComponent.Kind(), func(_ ecs.Entity, lb *component.LevelBounds) {
		vector.StrokeRect(screen, 0, 0, float32(lb.Width*scale), float32(lb.Height*scale), 1, boundsOutline, false)
	})
	ecs.ForEach(w, component.ObstacleComponent.Kind(), func(_ ecs.Entity, o *component.Obstacle) {
		bb := o.Shape.BB()
		vector.StrokeRect(screen,
			float32(bb.L*scale), float32(bb.B*scale),
			float32((bb.R-bb.L)*scale), float32((bb.T-bb.B)*scale),
			1, debugOutline, false)
	})
	ecs.ForEach(w, component.BodyComponent.Kind(), func(_ ecs.Entity, b *component.Body) {
		c := b.Center()
		vector.DrawFilledRect(screen, float32(c.X*scale)-1, float32(c.Y*scale)-1, 2, 2, debugOutline, false)
	})
}

// PlayerStateText describes the first player body, or "" without one.
func PlayerStateText(w *ecs.World) string {
	if w == nil {
		return ""
	}
	player, ok := w.First(component.PlayerTagComponent.Kind(), component.BodyComponent.Kind())
	if !ok {
		return ""
	}
	body, _ := ecs.Get(w, player, component.BodyComponent.Kind())

	sides := "-"
	if contacts, ok := ecs.Get(w, player, component.ContactsComponent.Kind()); ok && len(contacts.Sides) > 0 {
		names := make([]string, 0, len(contacts.Sides))
		for _, s := range contacts.Sides {
			names = append(names, s.String())
		}
		sides = strings.Join(names, ",")
	}

	return fmt.Sprintf("Pos: %.2f, %.2f\nVel: %.2f, %.2f\nGrounded: %v\nJumping: %v\nContacts: %s",
		body.X, body.Y, body.VelX, body.VelY, body.Grounded, body.Jumping, sides)
}

func DrawPlayerStateDebug(w *ecs.World, screen *ebiten.Image) {
	if screen == nil {
		return
	}
	if text := PlayerStateText(w); text != "" {
		ebitenutil.DebugPrintAt(screen, text, 10, 26)
	}
}
