package engine

import (
	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/vmath"
)

// Snapshot is the read surface handed to the renderer each frame. It
// exposes the live entity slices without copying; the renderer must treat
// everything reachable from it as read-only.
type Snapshot struct {
	Phase      Phase
	Frame      int64
	RunElapsed float64

	Player      *component.Player
	Enemies     []*component.Enemy
	Projectiles []*component.Projectile
	EnemyShots  []*component.EnemyShot
	Pickups     []*component.Pickup
	Drones      []*component.OrbitDrone
	Mines       []*component.Mine

	Kills int
	Gold  int

	// PendingChoices is non-nil only in PhaseLevelUp; ChoiceCursor is
	// the highlighted entry.
	PendingChoices []content.UpgradeChoice
	ChoiceCursor   int

	// Report is non-nil only in PhaseSummary.
	Report *RunReport

	Extraction ExtractionView

	// CameraTarget is the world position the camera should center on.
	CameraTarget vmath.Vec2
}

// ExtractionView describes the extraction zone for the HUD and world layer.
type ExtractionView struct {
	// Unlocked is set once the run timer passes the extraction unlock.
	Unlocked bool
	Pos      vmath.Vec2
	Radius   float64
	// Channel is the channeling progress in [0,1]; zero when the player
	// is outside the zone.
	Channel float64
}
