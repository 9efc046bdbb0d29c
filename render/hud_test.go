package render

import (
	"strings"
	"testing"

	"glyphstorm/component"
	"glyphstorm/content"
	"glyphstorm/engine"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

func hudSnapshot() *engine.Snapshot {
	p := component.NewPlayer(vmath.V(120, 70), content.BasePassiveStats())
	p.Health = 80
	p.MaxHealth = 100
	p.Level = 3
	p.AddWeapon("bolt")
	return &engine.Snapshot{
		Phase:      engine.PhasePlaying,
		RunElapsed: 83,
		Player:     p,
		Kills:      12,
		Gold:       7,
	}
}

func hudContext(snap *engine.Snapshot) Context {
	cam := NewCamera(80, 24+parameter.HUDHeight)
	cam.Follow(snap.Player.Pos)
	return Context{
		Snap:   snap,
		Cam:    cam,
		Width:  80,
		Height: 24 + parameter.HUDHeight,
	}
}

// TestHUDShowsVitals verifies health, level, timer, kills, and gold render
func TestHUDShowsVitals(t *testing.T) {
	snap := hudSnapshot()
	buf := NewBuffer(80, 24+parameter.HUDHeight)

	NewHUDRenderer().Render(hudContext(snap), buf)

	row := rowText(buf, 0)
	for _, want := range []string{"80/100", "LV 3", "01:23", "K 12", "$ 7"} {
		if !strings.Contains(row, want) {
			t.Errorf("Expected HUD row to contain %q, got %q", want, row)
		}
	}
}

// TestHUDShowsWeaponRoster verifies equipped weapon glyphs on the second row
func TestHUDShowsWeaponRoster(t *testing.T) {
	snap := hudSnapshot()
	snap.Player.AddWeapon("fan")
	snap.Player.LevelWeapon("fan")
	buf := NewBuffer(80, 24+parameter.HUDHeight)

	NewHUDRenderer().Render(hudContext(snap), buf)

	row := rowText(buf, 1)
	if !strings.Contains(row, "*") {
		t.Errorf("Expected bolt glyph on roster row, got %q", row)
	}
	if !strings.Contains(row, "v2") {
		t.Errorf("Expected fan at level 2 on roster row, got %q", row)
	}
}

// TestHUDExtractionCallout verifies the open and channeling callouts
func TestHUDExtractionCallout(t *testing.T) {
	snap := hudSnapshot()
	snap.Extraction = engine.ExtractionView{Unlocked: true}
	buf := NewBuffer(80, 24+parameter.HUDHeight)

	NewHUDRenderer().Render(hudContext(snap), buf)
	if !strings.Contains(rowText(buf, 1), "EXTRACTION OPEN") {
		t.Errorf("Expected open callout, got %q", rowText(buf, 1))
	}

	snap.Extraction.Channel = 0.5
	buf.Clear()
	NewHUDRenderer().Render(hudContext(snap), buf)
	if !strings.Contains(rowText(buf, 1), "EXTRACTING 50%") {
		t.Errorf("Expected channel progress, got %q", rowText(buf, 1))
	}
}

// TestHUDHiddenOutsideRun verifies menus phases draw no HUD
func TestHUDHiddenOutsideRun(t *testing.T) {
	snap := hudSnapshot()
	snap.Phase = engine.PhaseHub
	buf := NewBuffer(80, 24+parameter.HUDHeight)

	NewHUDRenderer().Render(hudContext(snap), buf)

	if row := strings.TrimSpace(rowText(buf, 0)); row != "" {
		t.Errorf("Expected empty HUD row outside a run, got %q", row)
	}
}

// TestHUDMuteIndicator verifies the audio flag surfaces on screen
func TestHUDMuteIndicator(t *testing.T) {
	snap := hudSnapshot()
	ctx := hudContext(snap)
	ctx.Muted = true
	buf := NewBuffer(80, 24+parameter.HUDHeight)

	NewHUDRenderer().Render(ctx, buf)

	if !strings.Contains(rowText(buf, 0), "MUTED") {
		t.Errorf("Expected mute indicator, got %q", rowText(buf, 0))
	}
}
