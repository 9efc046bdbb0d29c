package spatial

import (
	"math"

	"glyphstorm/component"
	"glyphstorm/vmath"
)

// CellKey addresses one uniform grid cell
type CellKey struct {
	X int
	Y int
}

// Hash is a uniform grid over the live enemy set, rebuilt wholesale once
// per frame. Rebuild-not-update sidesteps stale references: no removal
// API exists because nothing survives between frames.
//
// Only enemies collide with anything in this game, so the single
// enemy-keyed hash serves player, projectile, and drone queries alike.
// Adding new pair categories (projectile-projectile) would need a second
// hash
type Hash struct {
	cellSize    float64
	invCellSize float64
	grid        map[CellKey][]*component.Enemy
}

// NewHash creates a grid with the given cell edge length
func NewHash(cellSize float64) *Hash {
	return &Hash{
		cellSize:    cellSize,
		invCellSize: 1 / cellSize,
		grid:        make(map[CellKey][]*component.Enemy, 128),
	}
}

// Build clears the grid and reinserts every collidable enemy. Each enemy
// lands in exactly one cell per build
func (h *Hash) Build(enemies []*component.Enemy) {
	clear(h.grid)
	for _, e := range enemies {
		if !e.Collidable() {
			continue
		}
		key := h.keyFor(e.Pos)
		h.grid[key] = append(h.grid[key], e)
	}
}

// keyFor maps a position to its cell. Floor keeps negative coordinates
// in distinct cells instead of collapsing toward zero
func (h *Hash) keyFor(pos vmath.Vec2) CellKey {
	return CellKey{
		X: int(math.Floor(pos.X * h.invCellSize)),
		Y: int(math.Floor(pos.Y * h.invCellSize)),
	}
}

// Nearby appends all enemies in the query window to buf and returns it.
// The window spans 1+ceil(radius/cellSize) cells in every direction from
// the position's cell, a superset of true neighbors within radius.
// Callers own buf and pass buf[:0] to reuse it across frames
func (h *Hash) Nearby(pos vmath.Vec2, radius float64, buf []*component.Enemy) []*component.Enemy {
	reach := 1
	if radius > 0 {
		reach = 1 + int(math.Ceil(radius*h.invCellSize))
	}

	center := h.keyFor(pos)
	for dy := -reach; dy <= reach; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			cell, ok := h.grid[CellKey{X: center.X + dx, Y: center.Y + dy}]
			if !ok {
				continue
			}
			buf = append(buf, cell...)
		}
	}
	return buf
}

// CellSize returns the grid cell edge length
func (h *Hash) CellSize() float64 {
	return h.cellSize
}

// Stats returns occupied cell count and total stored entities for the
// debug overlay
func (h *Hash) Stats() (cells, entities int) {
	for _, cell := range h.grid {
		if len(cell) > 0 {
			cells++
			entities += len(cell)
		}
	}
	return cells, entities
}
