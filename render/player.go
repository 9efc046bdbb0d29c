package render

// PlayerRenderer draws the avatar. During the invulnerability window the
// glyph blinks so the grace period is readable
type PlayerRenderer struct {
	blink float64
}

// NewPlayerRenderer creates the player renderer
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// Render draws the avatar glyph
func (r *PlayerRenderer) Render(ctx Context, buf *Buffer) {
	p := ctx.Snap.Player
	if p == nil {
		return
	}
	r.blink += ctx.DeltaTime

	if p.Invulnerable && int(r.blink*10)%2 == 1 {
		return
	}
	if x, y, ok := ctx.Cam.ToScreen(p.Pos); ok {
		buf.Set(x, y, '@', StylePlayer)
	}
}
