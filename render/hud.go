package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"glyphstorm/engine"
	"glyphstorm/parameter"
	"glyphstorm/system"
)

// HUDRenderer draws the two status rows above the playfield: vitals and
// run totals on the first, the weapon roster and extraction state on the
// second
type HUDRenderer struct{}

// NewHUDRenderer creates the HUD renderer
func NewHUDRenderer() *HUDRenderer {
	return &HUDRenderer{}
}

// Render draws the HUD during run phases
func (h *HUDRenderer) Render(ctx Context, buf *Buffer) {
	snap := ctx.Snap
	switch snap.Phase {
	case engine.PhasePlaying, engine.PhasePaused, engine.PhaseLevelUp, engine.PhaseSummary:
	default:
		return
	}
	p := snap.Player
	if p == nil {
		return
	}

	buf.Fill(0, 0, ctx.Width, parameter.HUDHeight, ' ', StyleBackground)

	x := 0
	x = buf.hudBar(x, 0, "HP", p.Health/p.MaxHealth, StyleDanger)
	x = buf.hudText(x, 0, fmt.Sprintf("%d/%d", int(p.Health), int(p.MaxHealth)), StyleText)

	need := system.Threshold(p.Level)
	frac := 0.0
	if need > 0 {
		frac = float64(p.Experience) / float64(need)
	}
	x = buf.hudText(x, 0, fmt.Sprintf("LV %d", p.Level), StyleAccent)
	x = buf.hudBar(x, 0, "XP", frac, StyleAccent)

	mins := int(snap.RunElapsed) / 60
	secs := int(snap.RunElapsed) % 60
	x = buf.hudText(x, 0, fmt.Sprintf("%02d:%02d", mins, secs), StyleText)
	x = buf.hudText(x, 0, fmt.Sprintf("K %d", snap.Kills), StyleText)
	buf.hudText(x, 0, fmt.Sprintf("$ %d", snap.Gold), StyleGold)

	if ctx.Muted {
		buf.Text(ctx.Width-5, 0, "MUTED", StyleDim)
	}

	h.rosterRow(ctx, buf)
}

// rosterRow draws weapon glyphs with levels, passive count, and the
// extraction callout
func (h *HUDRenderer) rosterRow(ctx Context, buf *Buffer) {
	p := ctx.Snap.Player
	x := 1
	for _, w := range p.Weapons {
		buf.Set(x, 1, w.Def.Glyph, StyleText.Bold(true))
		x++
		x = buf.hudText(x, 1, fmt.Sprintf("%d", w.Level), StyleDim)
	}
	if n := len(p.Passives); n > 0 {
		x = buf.hudText(x+1, 1, fmt.Sprintf("passives %d", n), StyleDim)
	}

	ext := ctx.Snap.Extraction
	switch {
	case ext.Channel > 0:
		pct := int(ext.Channel * 100)
		text := fmt.Sprintf("EXTRACTING %d%%", pct)
		buf.Text(ctx.Width-len(text)-1, 1, text, StyleGood.Bold(true))
	case ext.Unlocked:
		text := "EXTRACTION OPEN"
		buf.Text(ctx.Width-len(text)-1, 1, text, StyleGood)
	}
}

// hudBar draws a labelled fraction bar and returns the next free column
func (b *Buffer) hudBar(x, y int, label string, frac float64, fill tcell.Style) int {
	if frac < 0 {
		frac = 0
	}
	if frac > 1 {
		frac = 1
	}
	x = b.hudText(x, y, label, StyleDim)
	b.Set(x, y, '[', StyleDim)
	x++
	w := parameter.HUDBarWidth
	filled := int(frac * float64(w))
	for i := 0; i < w; i++ {
		if i < filled {
			b.Set(x+i, y, '=', fill)
		} else {
			b.Set(x+i, y, '.', StyleDim)
		}
	}
	x += w
	b.Set(x, y, ']', StyleDim)
	return x + 2
}

// hudText writes a fragment and returns the next free column
func (b *Buffer) hudText(x, y int, s string, style tcell.Style) int {
	b.Text(x, y, s, style)
	return x + len(s) + 1
}
