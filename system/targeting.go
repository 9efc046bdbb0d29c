// Package system holds the per-frame simulation systems. Each system is
// a plain struct operating on entities passed in by the driver and
// reporting what happened through a result struct; systems never reach
// back into the driver or into each other.
package system

import (
	"glyphstorm/component"
	"glyphstorm/vmath"
)

// NearestEnemy returns the closest collidable enemy to pos, or ok=false
// when none exists.
func NearestEnemy(pos vmath.Vec2, enemies []*component.Enemy) (*component.Enemy, bool) {
	var best *component.Enemy
	bestSq := 0.0
	for _, e := range enemies {
		if !e.Collidable() {
			continue
		}
		dSq := pos.DistanceSq(e.Pos)
		if best == nil || dSq < bestSq {
			best = e
			bestSq = dSq
		}
	}
	return best, best != nil
}

// NearestEnemyWithin returns the closest collidable enemy inside radius.
func NearestEnemyWithin(pos vmath.Vec2, radius float64, enemies []*component.Enemy) (*component.Enemy, bool) {
	best, ok := NearestEnemy(pos, enemies)
	if !ok || pos.DistanceSq(best.Pos) > radius*radius {
		return nil, false
	}
	return best, true
}

// NearestEnemies fills buf with up to n collidable enemies ordered by
// ascending distance from pos and returns it. buf is caller-owned and
// reused across frames; results are valid until the next call with the
// same buffer. Multi-shot weapons index the result modulo its length so
// extra shots cycle through the available targets.
func NearestEnemies(pos vmath.Vec2, n int, enemies []*component.Enemy, buf []*component.Enemy) []*component.Enemy {
	buf = buf[:0]
	if n <= 0 {
		return buf
	}
	for _, e := range enemies {
		if !e.Collidable() {
			continue
		}
		buf = insertByDistance(pos, e, n, buf)
	}
	return buf
}

// insertByDistance keeps buf sorted ascending by distance to pos,
// holding at most n entries. n is the shot count of one weapon so the
// insertion scan stays a handful of elements.
func insertByDistance(pos vmath.Vec2, e *component.Enemy, n int, buf []*component.Enemy) []*component.Enemy {
	dSq := pos.DistanceSq(e.Pos)
	idx := len(buf)
	for i, cur := range buf {
		if dSq < pos.DistanceSq(cur.Pos) {
			idx = i
			break
		}
	}
	if idx >= n {
		return buf
	}
	if len(buf) < n {
		buf = append(buf, nil)
	}
	copy(buf[idx+1:], buf[idx:])
	buf[idx] = e
	return buf
}
