package render

import (
	"github.com/gdamore/tcell/v2"

	"glyphstorm/component"
)

// PickupRenderer draws uncollected drops
type PickupRenderer struct{}

// NewPickupRenderer creates the pickup renderer
func NewPickupRenderer() *PickupRenderer {
	return &PickupRenderer{}
}

// Render draws one glyph per live pickup
func (p *PickupRenderer) Render(ctx Context, buf *Buffer) {
	for _, pk := range ctx.Snap.Pickups {
		if !pk.Alive {
			continue
		}
		x, y, ok := ctx.Cam.ToScreen(pk.Pos)
		if !ok {
			continue
		}
		r, style := pickupGlyph(pk)
		buf.Set(x, y, r, style)
	}
}

func pickupGlyph(pk *component.Pickup) (rune, tcell.Style) {
	switch pk.Type {
	case component.PickupHealth:
		return '+', StyleGood
	case component.PickupGold:
		return '$', StyleGold
	default:
		// Rich experience drops read brighter
		if pk.Value >= 10 {
			return '*', StyleAccent.Bold(true)
		}
		return '*', StyleAccent
	}
}
