package render

import (
	"fmt"
	"sort"
	"sync/atomic"

	"glyphstorm/status"
)

// DebugRenderer paints the status registry down the right edge. Hidden
// by default; the debug key toggles it at runtime
type DebugRenderer struct {
	reg     *status.Registry
	visible bool

	lines []string // Reused between frames
}

// NewDebugRenderer creates a hidden debug overlay over the registry
func NewDebugRenderer(reg *status.Registry) *DebugRenderer {
	return &DebugRenderer{reg: reg}
}

// Toggle flips overlay visibility
func (d *DebugRenderer) Toggle() {
	d.visible = !d.visible
}

// IsVisible implements VisibilityToggle
func (d *DebugRenderer) IsVisible() bool {
	return d.visible
}

// Render draws every registered metric as one key=value line
func (d *DebugRenderer) Render(ctx Context, buf *Buffer) {
	d.lines = d.lines[:0]
	d.reg.Ints.Range(func(key string, ptr *atomic.Int64) {
		d.lines = append(d.lines, fmt.Sprintf("%s %d", key, ptr.Load()))
	})
	d.reg.Floats.Range(func(key string, ptr *status.AtomicFloat) {
		d.lines = append(d.lines, fmt.Sprintf("%s %.2f", key, ptr.Get()))
	})
	d.reg.Bools.Range(func(key string, ptr *atomic.Bool) {
		d.lines = append(d.lines, fmt.Sprintf("%s %v", key, ptr.Load()))
	})
	d.reg.Strings.Range(func(key string, ptr *status.AtomicString) {
		d.lines = append(d.lines, fmt.Sprintf("%s %s", key, ptr.Load()))
	})
	sort.Strings(d.lines)

	width := 0
	for _, l := range d.lines {
		if len(l) > width {
			width = len(l)
		}
	}
	x := ctx.Width - width - 1
	for i, l := range d.lines {
		buf.Text(x, 1+i, l, StyleDim)
	}
}
