package render

// MineRenderer draws placed mines. Armed mines blink so the player can
// tell them apart from mines still in the arm delay
type MineRenderer struct {
	blink float64
}

// NewMineRenderer creates the mine renderer
func NewMineRenderer() *MineRenderer {
	return &MineRenderer{}
}

// Render draws one glyph per live mine
func (m *MineRenderer) Render(ctx Context, buf *Buffer) {
	m.blink += ctx.DeltaTime
	bright := int(m.blink*4)%2 == 0

	for _, mn := range ctx.Snap.Mines {
		if mn == nil || !mn.Alive {
			continue
		}
		x, y, ok := ctx.Cam.ToScreen(mn.Pos)
		if !ok {
			continue
		}
		style := StyleMineInert
		if mn.Armed && bright {
			style = StyleMineArmed
		}
		buf.Set(x, y, '+', style)
	}
}
