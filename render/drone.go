package render

// DroneRenderer draws orbiting drones
type DroneRenderer struct{}

// NewDroneRenderer creates the drone renderer
func NewDroneRenderer() *DroneRenderer {
	return &DroneRenderer{}
}

// Render draws one glyph per drone
func (d *DroneRenderer) Render(ctx Context, buf *Buffer) {
	for _, dr := range ctx.Snap.Drones {
		if dr == nil || !dr.Alive {
			continue
		}
		if x, y, ok := ctx.Cam.ToScreen(dr.Pos); ok {
			buf.Set(x, y, 'o', StyleDrone)
		}
	}
}
