package render

import (
	"fmt"

	"glyphstorm/engine"
)

// OverlayRenderer draws the phase screens on top of the frozen gameplay
// frame: title, pause, level-up choices, the run summary, and any
// caller-owned menu (the hub). Exactly one overlay is active per phase
type OverlayRenderer struct {
	pulse float64
}

// NewOverlayRenderer creates the overlay renderer
func NewOverlayRenderer() *OverlayRenderer {
	return &OverlayRenderer{}
}

// Render dispatches on the current phase
func (o *OverlayRenderer) Render(ctx Context, buf *Buffer) {
	o.pulse += ctx.DeltaTime

	switch ctx.Snap.Phase {
	case engine.PhaseTitle:
		o.title(ctx, buf)
	case engine.PhaseHub:
		o.menu(ctx, buf)
	case engine.PhasePaused:
		o.paused(ctx, buf)
	case engine.PhaseLevelUp:
		o.levelUp(ctx, buf)
	case engine.PhaseSummary:
		o.summary(ctx, buf)
	}
}

func (o *OverlayRenderer) title(ctx Context, buf *Buffer) {
	buf.Fill(0, 0, ctx.Width, ctx.Height, ' ', StyleBackground)
	mid := ctx.Height / 2
	buf.TextCentered(mid-3, "G L Y P H S T O R M", StyleAccent.Bold(true))
	buf.TextCentered(mid-1, "survive the swarm, extract the gold", StyleDim)
	if int(o.pulse*2)%2 == 0 {
		buf.TextCentered(mid+2, "press ENTER", StyleText)
	}
}

// menu draws a caller-owned menu centered on screen
func (o *OverlayRenderer) menu(ctx Context, buf *Buffer) {
	m := ctx.Menu
	if m == nil {
		return
	}
	buf.Fill(0, 0, ctx.Width, ctx.Height, ' ', StyleBackground)

	w := len(m.Title) + 4
	for _, it := range m.Items {
		if n := len(it.Label) + len(it.Detail) + 8; n > w {
			w = n
		}
	}
	if n := len(m.Footer) + 4; n > w {
		w = n
	}
	h := len(m.Items) + 6
	x := (ctx.Width - w) / 2
	y := (ctx.Height - h) / 2

	buf.Frame(x, y, w, h, StyleDim)
	buf.TextCentered(y+1, m.Title, StyleAccent.Bold(true))

	for i, it := range m.Items {
		row := y + 3 + i
		style := StyleText
		if it.Disabled {
			style = StyleDim
		}
		prefix := "  "
		if i == m.Cursor {
			prefix = "> "
			style = style.Bold(true)
		}
		line := prefix + it.Label
		if it.Detail != "" {
			line += "  " + it.Detail
		}
		buf.Text(x+2, row, line, style)
	}

	buf.TextCentered(y+h-2, m.Footer, StyleDim)
}

func (o *OverlayRenderer) paused(ctx Context, buf *Buffer) {
	w, h := 36, 5
	x := (ctx.Width - w) / 2
	y := (ctx.Height - h) / 2
	buf.Fill(x, y, w, h, ' ', StyleBackground)
	buf.Frame(x, y, w, h, StyleDim)
	buf.TextCentered(y+1, "PAUSED", StyleText.Bold(true))
	buf.TextCentered(y+3, "ESC resume   Q abandon run", StyleDim)
}

func (o *OverlayRenderer) levelUp(ctx Context, buf *Buffer) {
	choices := ctx.Snap.PendingChoices
	w := 48
	for _, c := range choices {
		if n := len(c.Name) + len(c.Detail) + 12; n > w {
			w = n
		}
	}
	h := len(choices)*2 + 5
	x := (ctx.Width - w) / 2
	y := (ctx.Height - h) / 2

	buf.Fill(x, y, w, h, ' ', StyleBackground)
	buf.Frame(x, y, w, h, StyleAccent)
	buf.TextCentered(y+1, fmt.Sprintf("LEVEL %d", ctx.Snap.Player.Level), StyleAccent.Bold(true))

	for i, c := range choices {
		row := y + 3 + i*2
		style := StyleText
		prefix := fmt.Sprintf("  %d. ", i+1)
		if i == ctx.Snap.ChoiceCursor {
			prefix = fmt.Sprintf("> %d. ", i+1)
			style = style.Bold(true)
		}
		buf.Text(x+2, row, prefix+c.Name, style)
		buf.Text(x+2+len(prefix), row+1, c.Detail, StyleDim)
	}
}

func (o *OverlayRenderer) summary(ctx Context, buf *Buffer) {
	r := ctx.Snap.Report
	if r == nil {
		return
	}
	w, h := 44, 11
	x := (ctx.Width - w) / 2
	y := (ctx.Height - h) / 2

	buf.Fill(x, y, w, h, ' ', StyleBackground)
	buf.Frame(x, y, w, h, StyleDim)

	if r.Extracted {
		buf.TextCentered(y+1, "EXTRACTED", StyleGood.Bold(true))
	} else {
		buf.TextCentered(y+1, "YOU DIED", StyleDanger.Bold(true))
	}

	mins := int(r.Survived) / 60
	secs := int(r.Survived) % 60
	buf.Text(x+4, y+3, fmt.Sprintf("survived   %02d:%02d", mins, secs), StyleText)
	buf.Text(x+4, y+4, fmt.Sprintf("kills      %d", r.Kills), StyleText)
	buf.Text(x+4, y+5, fmt.Sprintf("level      %d", r.Level), StyleText)
	buf.Text(x+4, y+6, fmt.Sprintf("gold found %d", r.GoldFound), StyleText)
	buf.Text(x+4, y+7, fmt.Sprintf("gold kept  %d", r.GoldEarned()), StyleGold.Bold(true))

	if int(o.pulse*2)%2 == 0 {
		buf.TextCentered(y+h-2, "press ENTER", StyleDim)
	}
}
