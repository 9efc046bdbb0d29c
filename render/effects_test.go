package render

import (
	"math/rand"
	"testing"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/engine"
	"glyphstorm/parameter"
	"glyphstorm/system"
	"glyphstorm/vmath"
)

func effectsCam() Camera {
	cam := NewCamera(80, 24+parameter.HUDHeight)
	cam.Follow(vmath.V(120, 70))
	return cam
}

// TestEffectsHitSpawnsFloatingNumber verifies damage numbers appear where hits land
func TestEffectsHitSpawnsFloatingNumber(t *testing.T) {
	e := NewEffectsRenderer(rand.New(rand.NewSource(1)))
	e.Ingest(&engine.FrameResult{
		Hits: []system.HitEvent{{Pos: vmath.V(120, 70), Amount: 7.4}},
	})

	buf := NewBuffer(80, 24+parameter.HUDHeight)
	cam := effectsCam()
	e.Render(Context{DeltaTime: 0.016, Cam: cam}, buf)

	if !bufferContains(buf, "7") {
		t.Errorf("Expected rounded damage number on screen")
	}
	if _, texts := e.Live(); texts != 1 {
		t.Errorf("Expected 1 live floating text, got %d", texts)
	}
}

// TestEffectsFloatingTextRisesAndExpires verifies the drift and lifetime
func TestEffectsFloatingTextRisesAndExpires(t *testing.T) {
	e := NewEffectsRenderer(rand.New(rand.NewSource(1)))
	e.Ingest(&engine.FrameResult{
		Hits: []system.HitEvent{{Pos: vmath.V(120, 70), Amount: 12}},
	})

	buf := NewBuffer(80, 24+parameter.HUDHeight)
	cam := effectsCam()

	startY := e.texts[0].Pos.Y
	e.Render(Context{DeltaTime: 0.1, Cam: cam}, buf)
	if e.texts[0].Pos.Y >= startY {
		t.Errorf("Expected text to rise, got Y %v from %v", e.texts[0].Pos.Y, startY)
	}

	for i := 0; i < 20; i++ {
		e.Render(Context{DeltaTime: 0.1, Cam: cam}, buf)
	}
	if _, texts := e.Live(); texts != 0 {
		t.Errorf("Expected floating text to expire, got %d live", texts)
	}
}

// TestEffectsKillBurstExpires verifies kill debris ages out of the pool
func TestEffectsKillBurstExpires(t *testing.T) {
	e := NewEffectsRenderer(rand.New(rand.NewSource(2)))
	def, ok := content.EnemyByID("basic")
	if !ok {
		t.Fatalf("Expected basic enemy definition")
	}
	e.Ingest(&engine.FrameResult{
		Kills: []system.KillEvent{{Def: def, Pos: vmath.V(120, 70)}},
	})

	particles, _ := e.Live()
	if particles == 0 {
		t.Fatalf("Expected kill burst to spawn particles")
	}

	buf := NewBuffer(80, 24+parameter.HUDHeight)
	cam := effectsCam()
	for i := 0; i < 30; i++ {
		e.Render(Context{DeltaTime: 0.05, Cam: cam}, buf)
	}
	particles, _ = e.Live()
	if particles != 0 {
		t.Errorf("Expected all particles expired, got %d", particles)
	}
}

// TestEffectsTextPoolRecyclesOldest verifies the pool never grows past its cap
func TestEffectsTextPoolRecyclesOldest(t *testing.T) {
	e := NewEffectsRenderer(rand.New(rand.NewSource(3)))

	res := &engine.FrameResult{}
	for i := 0; i < parameter.FloatingTextCap+10; i++ {
		res.Hits = append(res.Hits, system.HitEvent{Pos: vmath.V(120, 70), Amount: float64(i)})
	}
	e.Ingest(res)

	if _, texts := e.Live(); texts != parameter.FloatingTextCap {
		t.Errorf("Expected pool capped at %d, got %d", parameter.FloatingTextCap, texts)
	}
}

// TestEffectsGoldPickupCaption verifies collected gold draws a caption
func TestEffectsGoldPickupCaption(t *testing.T) {
	e := NewEffectsRenderer(rand.New(rand.NewSource(4)))
	e.Ingest(&engine.FrameResult{
		Collected: []system.CollectEvent{{Type: component.PickupGold, Value: 3, Pos: vmath.V(120, 70)}},
	})

	buf := NewBuffer(80, 24+parameter.HUDHeight)
	e.Render(Context{DeltaTime: 0.016, Cam: effectsCam()}, buf)

	if !bufferContains(buf, "$3") {
		t.Errorf("Expected gold caption on screen")
	}
}
