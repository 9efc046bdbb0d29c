package system

import (
	"math"
	"math/rand"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// Spawn edges around the viewport, indexed by rng.Perm.
const (
	edgeTop = iota
	edgeBottom
	edgeLeft
	edgeRight
	edgeCount
)

// SpawnSystem schedules enemy arrivals: periodic wave bursts along the
// viewport edges plus a continuous background trickle. Both timers keep
// advancing when the enemy cap blocks placement, so pressure resumes
// immediately once slots free up instead of bunching into a burst.
type SpawnSystem struct {
	rng *rand.Rand

	waveTimer    float64
	trickleTimer float64

	spawned []*component.Enemy
}

func NewSpawnSystem(rng *rand.Rand) *SpawnSystem {
	s := &SpawnSystem{rng: rng}
	s.Reset()
	return s
}

// Reset rewinds both schedules for a new run: the opening wave fires on
// the first frame, the trickle waits a full interval.
func (s *SpawnSystem) Reset() {
	s.waveTimer = 0
	s.trickleTimer = parameter.ContinuousSpawnInterval
}

// Update advances both schedules and returns the enemies spawned this
// frame. center is the camera focus; live is the current enemy count the
// cap is measured against. The returned slice is reused next frame.
func (s *SpawnSystem) Update(dt, elapsed float64, center vmath.Vec2, live int) []*component.Enemy {
	s.spawned = s.spawned[:0]

	s.waveTimer -= dt
	if s.waveTimer <= 0 {
		bracket := content.BracketFor(elapsed)
		s.waveTimer = bracket.Interval
		s.spawnWave(bracket, elapsed, center, live)
	}

	s.trickleTimer -= dt
	if s.trickleTimer <= 0 {
		s.trickleTimer = parameter.ContinuousSpawnInterval
		if live+len(s.spawned) < parameter.EnemyCap {
			s.spawnAt(s.rng.Intn(edgeCount), elapsed, center)
		}
	}

	return s.spawned
}

// spawnWave places one burst: a random subset of viewport edges, the
// bracket size split evenly across them with the remainder going to the
// first edges drawn.
func (s *SpawnSystem) spawnWave(bracket content.WaveBracket, elapsed float64, center vmath.Vec2, live int) {
	edges := bracket.MinEdges
	if bracket.MaxEdges > bracket.MinEdges {
		edges += s.rng.Intn(bracket.MaxEdges - bracket.MinEdges + 1)
	}
	if edges > edgeCount {
		edges = edgeCount
	}
	order := s.rng.Perm(edgeCount)[:edges]

	base := bracket.Size / edges
	rem := bracket.Size % edges
	for i, edge := range order {
		count := base
		if i < rem {
			count++
		}
		for j := 0; j < count; j++ {
			if live+len(s.spawned) >= parameter.EnemyCap {
				return
			}
			s.spawnAt(edge, elapsed, center)
		}
	}
}

// spawnAt creates one enemy just outside the given viewport edge. Unknown
// kinds from the picker are skipped rather than crashing the wave.
func (s *SpawnSystem) spawnAt(edge int, elapsed float64, center vmath.Vec2) {
	id, ok := content.RandomEnemyID(elapsed, s.rng)
	if !ok {
		return
	}
	def, ok := content.EnemyByID(id)
	if !ok {
		return
	}

	halfW := parameter.SpawnViewHalfWidth + parameter.SpawnMargin
	halfH := parameter.SpawnViewHalfHeight + parameter.SpawnMargin

	var pos vmath.Vec2
	switch edge {
	case edgeTop:
		pos = vmath.V(center.X+s.span(parameter.SpawnViewHalfWidth), center.Y-halfH)
	case edgeBottom:
		pos = vmath.V(center.X+s.span(parameter.SpawnViewHalfWidth), center.Y+halfH)
	case edgeLeft:
		pos = vmath.V(center.X-halfW, center.Y+s.span(parameter.SpawnViewHalfHeight))
	default:
		pos = vmath.V(center.X+halfW, center.Y+s.span(parameter.SpawnViewHalfHeight))
	}

	pos.X += s.span(parameter.SpawnJitter)
	pos.Y += s.span(parameter.SpawnJitter)
	pos = clampToWorld(pos, def.Radius)

	s.spawned = append(s.spawned, component.NewEnemy(def, pos, s.rng))
}

// Minions bursts a swarm enemy's children around its death position,
// respecting the enemy cap. Appends into out and returns it.
func (s *SpawnSystem) Minions(def *content.EnemyDef, pos vmath.Vec2, live int, out []*component.Enemy) []*component.Enemy {
	minionDef, ok := content.EnemyByID(def.MinionID)
	if !ok {
		return out
	}
	for i := 0; i < def.MinionCount; i++ {
		if live+len(out) >= parameter.EnemyCap {
			break
		}
		angle := 2 * math.Pi * float64(i) / float64(def.MinionCount)
		offset := vmath.FromAngle(angle).Scale(def.Radius + minionDef.Radius)
		p := clampToWorld(pos.Add(offset), minionDef.Radius)
		out = append(out, component.NewEnemy(minionDef, p, s.rng))
	}
	return out
}

// span returns a uniform value in [-half, half).
func (s *SpawnSystem) span(half float64) float64 {
	return (s.rng.Float64()*2 - 1) * half
}

func clampToWorld(pos vmath.Vec2, radius float64) vmath.Vec2 {
	pos.X = vmath.Clamp(pos.X, radius, parameter.WorldWidth-radius)
	pos.Y = vmath.Clamp(pos.Y, radius, parameter.WorldHeight-radius)
	return pos
}
