package render

import (
	"math"
	"math/rand"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"glyphstorm/component"
	"glyphstorm/engine"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// particle is one short-lived debris glyph
type particle struct {
	Pos      vmath.Vec2
	Vel      vmath.Vec2
	Age      float64
	Lifetime float64
	Glyph    rune
	Style    tcell.Style
	Alive    bool
}

// floatingText is one rising combat number
type floatingText struct {
	Pos   vmath.Vec2
	Text  string
	Age   float64
	Style tcell.Style
	Alive bool
}

// EffectsRenderer owns the particle and floating text pools. The driver
// feeds it each frame's combat events through Ingest; rendering then
// ages the pools on wall-clock time so effects keep moving even while
// the simulation is paused behind an overlay. Both pools are fixed
// size, recycling the oldest slot when full
type EffectsRenderer struct {
	rng *rand.Rand

	particles [parameter.ParticleCap]particle
	texts     [parameter.FloatingTextCap]floatingText
	pHead     int
	tHead     int
}

// NewEffectsRenderer creates the effect pools
func NewEffectsRenderer(rng *rand.Rand) *EffectsRenderer {
	return &EffectsRenderer{rng: rng}
}

// Ingest converts one frame's combat events into pool entries
func (e *EffectsRenderer) Ingest(res *engine.FrameResult) {
	if res == nil {
		return
	}
	for _, h := range res.Hits {
		e.spawnText(h.Pos, strconv.Itoa(int(math.Round(h.Amount))), StyleText)
	}
	for _, c := range res.Collected {
		// Experience pickups are too frequent to caption
		switch c.Type {
		case component.PickupHealth:
			e.spawnText(c.Pos, "+"+strconv.Itoa(c.Value), StyleGood)
		case component.PickupGold:
			e.spawnText(c.Pos, "$"+strconv.Itoa(c.Value), StyleGold)
		}
	}
	for _, k := range res.Kills {
		e.burst(k.Pos, 5, 8, EnemyStyle(k.Def.ID))
	}
	for _, p := range res.Pulses {
		e.ring(p.Pos, p.Radius)
	}
	for _, x := range res.Explosions {
		e.burst(x.Pos, 14, 16, StyleGold)
	}
}

// Render ages and draws both pools
func (e *EffectsRenderer) Render(ctx Context, buf *Buffer) {
	dt := ctx.DeltaTime

	for i := range e.particles {
		p := &e.particles[i]
		if !p.Alive {
			continue
		}
		p.Age += dt
		if p.Age >= p.Lifetime {
			p.Alive = false
			continue
		}
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		style := p.Style
		if p.Age > p.Lifetime/2 {
			style = style.Dim(true)
		}
		if x, y, ok := ctx.Cam.ToScreen(p.Pos); ok {
			buf.Set(x, y, p.Glyph, style)
		}
	}

	for i := range e.texts {
		t := &e.texts[i]
		if !t.Alive {
			continue
		}
		t.Age += dt
		if t.Age >= parameter.FloatingTextDuration {
			t.Alive = false
			continue
		}
		t.Pos.Y -= parameter.FloatingTextRise * dt
		style := t.Style
		if t.Age > parameter.FloatingTextDuration/2 {
			style = style.Dim(true)
		}
		if x, y, ok := ctx.Cam.ToScreen(t.Pos); ok {
			buf.Text(x, y, t.Text, style)
		}
	}
}

// spawnText claims the next text slot, recycling the oldest
func (e *EffectsRenderer) spawnText(pos vmath.Vec2, text string, style tcell.Style) {
	t := &e.texts[e.tHead]
	e.tHead = (e.tHead + 1) % len(e.texts)
	*t = floatingText{Pos: pos, Text: text, Style: style, Alive: true}
}

// burst scatters debris glyphs outward from a point
func (e *EffectsRenderer) burst(pos vmath.Vec2, count int, speed float64, style tcell.Style) {
	glyphs := [...]rune{'*', '.', ','}
	for i := 0; i < count; i++ {
		dir := vmath.FromAngle(e.rng.Float64() * 2 * math.Pi)
		e.spawnParticle(particle{
			Pos:      pos,
			Vel:      dir.Scale(speed * (0.5 + e.rng.Float64())),
			Lifetime: parameter.ParticleLifetime * (0.6 + e.rng.Float64()*0.8),
			Glyph:    glyphs[e.rng.Intn(len(glyphs))],
			Style:    style,
			Alive:    true,
		})
	}
}

// ring spawns slow particles around a circle, the aura discharge visual
func (e *EffectsRenderer) ring(pos vmath.Vec2, radius float64) {
	steps := int(radius*4) + 8
	for i := 0; i < steps; i++ {
		dir := vmath.FromAngle(float64(i) / float64(steps) * 2 * math.Pi)
		e.spawnParticle(particle{
			Pos:      pos.Add(dir.Scale(radius * 0.6)),
			Vel:      dir.Scale(radius * 1.5),
			Lifetime: parameter.ParticleLifetime * 0.6,
			Glyph:    '.',
			Style:    StyleAccent,
			Alive:    true,
		})
	}
}

func (e *EffectsRenderer) spawnParticle(p particle) {
	e.particles[e.pHead] = p
	e.pHead = (e.pHead + 1) % len(e.particles)
}

// Live returns current pool occupancy, for the debug overlay
func (e *EffectsRenderer) Live() (int, int) {
	np, nt := 0, 0
	for i := range e.particles {
		if e.particles[i].Alive {
			np++
		}
	}
	for i := range e.texts {
		if e.texts[i].Alive {
			nt++
		}
	}
	return np, nt
}
