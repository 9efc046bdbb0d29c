package render

import (
	"math"

	"glyphstorm/vmath"
)

// ProjectileRenderer draws player shots and enemy shots. Shots pick a
// glyph from their heading so volleys read as motion even at one cell
// per entity
type ProjectileRenderer struct{}

// NewProjectileRenderer creates the projectile renderer
func NewProjectileRenderer() *ProjectileRenderer {
	return &ProjectileRenderer{}
}

// Render draws both shot families
func (p *ProjectileRenderer) Render(ctx Context, buf *Buffer) {
	for _, pr := range ctx.Snap.Projectiles {
		if !pr.Alive {
			continue
		}
		if x, y, ok := ctx.Cam.ToScreen(pr.Pos); ok {
			buf.Set(x, y, headingGlyph(pr.Vel), StyleProjectile)
		}
	}
	for _, sh := range ctx.Snap.EnemyShots {
		if !sh.Alive {
			continue
		}
		if x, y, ok := ctx.Cam.ToScreen(sh.Pos); ok {
			buf.Set(x, y, 'o', StyleEnemyShot)
		}
	}
}

// headingGlyph buckets a velocity into 4 directions of travel
func headingGlyph(vel vmath.Vec2) rune {
	if vel.X == 0 && vel.Y == 0 {
		return '-'
	}
	a := math.Atan2(vel.Y, vel.X)
	// Fold into [0, pi) so opposite headings share a glyph
	if a < 0 {
		a += math.Pi
	}
	switch int(a/(math.Pi/4)+0.5) % 4 {
	case 1:
		return '\\'
	case 2:
		return '|'
	case 3:
		return '/'
	default:
		return '-'
	}
}
