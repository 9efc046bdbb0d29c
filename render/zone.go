package render

import (
	"math"

	"glyphstorm/vmath"
)

// ZoneRenderer draws the extraction zone once it unlocks: a dotted ring
// with a beacon at the center. The beacon pulses while the player is
// channeling
type ZoneRenderer struct {
	pulse float64
}

// NewZoneRenderer creates the extraction zone renderer
func NewZoneRenderer() *ZoneRenderer {
	return &ZoneRenderer{}
}

// Render draws the ring when extraction is unlocked
func (z *ZoneRenderer) Render(ctx Context, buf *Buffer) {
	ext := ctx.Snap.Extraction
	if !ext.Unlocked {
		return
	}
	z.pulse += ctx.DeltaTime

	if !ctx.Cam.Visible(ext.Pos, ext.Radius+1) {
		return
	}

	// Step the circumference finely enough that adjacent cells connect
	steps := int(ext.Radius*8) + 8
	for i := 0; i < steps; i++ {
		a := float64(i) / float64(steps) * 2 * math.Pi
		p := ext.Pos.Add(vmath.FromAngle(a).Scale(ext.Radius))
		if x, y, ok := ctx.Cam.ToScreen(p); ok {
			buf.Set(x, y, '.', StyleZone)
		}
	}

	beacon := 'O'
	style := StyleZone
	if ext.Channel > 0 && int(z.pulse*6)%2 == 0 {
		beacon = '0'
		style = StyleZone.Bold(true)
	}
	if x, y, ok := ctx.Cam.ToScreen(ext.Pos); ok {
		buf.Set(x, y, beacon, style)
	}
}
