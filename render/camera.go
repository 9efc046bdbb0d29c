package render

import (
	"math"

	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// Camera maps world cells to screen cells. It centers on a target and
// clamps to the playfield, so the view never shows past the world edge
// unless the terminal is larger than the world, in which case the
// playfield is centered instead
type Camera struct {
	originX float64 // World coordinate at the viewport's top-left
	originY float64

	viewW int
	viewH int
	offX  int // Screen offset of the viewport (HUD rows, centering)
	offY  int
}

// NewCamera creates a camera for the given terminal size. The HUD rows
// at the top are excluded from the viewport
func NewCamera(screenW, screenH int) Camera {
	c := Camera{}
	c.SetScreen(screenW, screenH)
	return c
}

// SetScreen re-derives the viewport from a new terminal size
func (c *Camera) SetScreen(screenW, screenH int) {
	c.viewW = screenW
	c.viewH = screenH - parameter.HUDHeight
	if c.viewH < 0 {
		c.viewH = 0
	}
	c.offX = 0
	c.offY = parameter.HUDHeight
	if float64(c.viewW) > parameter.WorldWidth {
		c.offX = (c.viewW - int(parameter.WorldWidth)) / 2
		c.viewW = int(parameter.WorldWidth)
	}
	if float64(c.viewH) > parameter.WorldHeight {
		c.offY += (c.viewH - int(parameter.WorldHeight)) / 2
		c.viewH = int(parameter.WorldHeight)
	}
}

// Follow centers the viewport on target, clamped to world bounds
func (c *Camera) Follow(target vmath.Vec2) {
	c.originX = vmath.Clamp(target.X-float64(c.viewW)/2, 0, parameter.WorldWidth-float64(c.viewW))
	c.originY = vmath.Clamp(target.Y-float64(c.viewH)/2, 0, parameter.WorldHeight-float64(c.viewH))
}

// ToScreen converts a world position to screen cell coordinates. The
// second return is false when the position falls outside the viewport
func (c *Camera) ToScreen(pos vmath.Vec2) (int, int, bool) {
	x := int(math.Round(pos.X - c.originX))
	y := int(math.Round(pos.Y - c.originY))
	if x < 0 || x >= c.viewW || y < 0 || y >= c.viewH {
		return 0, 0, false
	}
	return x + c.offX, y + c.offY, true
}

// Visible reports whether any part of a circle at pos intersects the
// viewport. Used to cull before per-cell work
func (c *Camera) Visible(pos vmath.Vec2, radius float64) bool {
	return pos.X+radius >= c.originX && pos.X-radius < c.originX+float64(c.viewW) &&
		pos.Y+radius >= c.originY && pos.Y-radius < c.originY+float64(c.viewH)
}

// View returns the viewport size in cells
func (c *Camera) View() (int, int) {
	return c.viewW, c.viewH
}
