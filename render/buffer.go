package render

import (
	"github.com/gdamore/tcell/v2"
)

// Cell is one screen position in the compositor buffer
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Buffer is the off-screen compositor all renderers draw into. It is
// cleared, painted in priority order, and flushed to the terminal once
// per frame so partial frames never reach the screen
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocating only if capacity is
// insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to the background using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = Cell{Rune: ' ', Style: StyleBackground}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Bounds returns buffer dimensions
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Set writes one cell. Out-of-bounds writes are dropped
func (b *Buffer) Set(x, y int, r rune, style tcell.Style) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = Cell{Rune: r, Style: style}
}

// Get reads one cell. Out-of-bounds reads return the background cell
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return Cell{Rune: ' ', Style: StyleBackground}
	}
	return b.cells[y*b.width+x]
}

// Text writes a string starting at x, clipped at the right edge
func (b *Buffer) Text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		b.Set(x, y, r, style)
		x++
	}
}

// TextCentered writes a string centered on the buffer width
func (b *Buffer) TextCentered(y int, s string, style tcell.Style) {
	b.Text((b.width-len([]rune(s)))/2, y, s, style)
}

// Fill paints a rectangle with one rune and style, clipped to bounds
func (b *Buffer) Fill(x, y, w, h int, r rune, style tcell.Style) {
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			b.Set(col, row, r, style)
		}
	}
}

// Frame draws a single-line box border around the given rectangle
func (b *Buffer) Frame(x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for col := x + 1; col < x+w-1; col++ {
		b.Set(col, y, tcell.RuneHLine, style)
		b.Set(col, y+h-1, tcell.RuneHLine, style)
	}
	for row := y + 1; row < y+h-1; row++ {
		b.Set(x, row, tcell.RuneVLine, style)
		b.Set(x+w-1, row, tcell.RuneVLine, style)
	}
	b.Set(x, y, tcell.RuneULCorner, style)
	b.Set(x+w-1, y, tcell.RuneURCorner, style)
	b.Set(x, y+h-1, tcell.RuneLLCorner, style)
	b.Set(x+w-1, y+h-1, tcell.RuneLRCorner, style)
}

// Flush pushes the full buffer to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := y * b.width
		for x := 0; x < b.width; x++ {
			c := b.cells[row+x]
			screen.SetContent(x, y, c.Rune, nil, c.Style)
		}
	}
	screen.Show()
}
