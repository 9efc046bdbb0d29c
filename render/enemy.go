package render

import (
	"glyphstorm/parameter"
)

// EnemyRenderer draws the horde. Three shading states layer over the
// per-definition palette: hit flash (white), low health (dim), and the
// death animation (corpse glyph fading out)
type EnemyRenderer struct{}

// NewEnemyRenderer creates the enemy renderer
func NewEnemyRenderer() *EnemyRenderer {
	return &EnemyRenderer{}
}

// Render draws one glyph per enemy
func (r *EnemyRenderer) Render(ctx Context, buf *Buffer) {
	for _, e := range ctx.Snap.Enemies {
		if e == nil || !e.Alive {
			continue
		}
		x, y, ok := ctx.Cam.ToScreen(e.Pos)
		if !ok {
			continue
		}

		if e.Dying {
			// Shrink to a speck over the death window
			glyph := e.Def.Glyph
			if e.DeathTimer < parameter.EnemyDeathDuration/2 {
				glyph = '.'
			}
			buf.Set(x, y, glyph, StyleDying)
			continue
		}

		style := EnemyStyle(e.Def.ID)
		switch {
		case e.FlashTimer > 0:
			style = StyleFlash
		case e.HealthFraction() < 0.35:
			style = style.Dim(true)
		}
		buf.Set(x, y, e.Def.Glyph, style)
	}
}
