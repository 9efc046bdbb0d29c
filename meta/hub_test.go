package meta

import (
	"strings"
	"testing"
)

// TestHubMenuLayout verifies entry order: start, upgrades, quit
func TestHubMenuLayout(t *testing.T) {
	p := NewProfile()
	h := NewHubMenu(p)

	rows := h.Rows()
	if len(rows) != len(Upgrades)+2 {
		t.Fatalf("Expected %d rows, got %d", len(Upgrades)+2, len(rows))
	}
	if rows[0].Label != "Begin Run" {
		t.Errorf("Expected first row Begin Run, got %q", rows[0].Label)
	}
	if rows[len(rows)-1].Label != "Quit" {
		t.Errorf("Expected last row Quit, got %q", rows[len(rows)-1].Label)
	}
	for i := 1; i < len(rows)-1; i++ {
		if rows[i].Detail == "" {
			t.Errorf("Expected upgrade row %d to carry cost detail", i)
		}
	}
}

// TestHubMenuCursorWraps verifies wraparound both directions
func TestHubMenuCursorWraps(t *testing.T) {
	h := NewHubMenu(NewProfile())

	h.MoveUp()
	if h.Cursor() != h.Len()-1 {
		t.Errorf("Expected wrap to last entry, got %d", h.Cursor())
	}
	h.MoveDown()
	if h.Cursor() != 0 {
		t.Errorf("Expected wrap back to first entry, got %d", h.Cursor())
	}
}

// TestHubMenuSelectActions verifies start, quit, and purchase dispatch
func TestHubMenuSelectActions(t *testing.T) {
	p := NewProfile()
	p.Gold = 100
	h := NewHubMenu(p)

	if action, _ := h.Select(); action != HubActionStart {
		t.Errorf("Expected start action on first entry, got %v", action)
	}

	for h.Cursor() != h.Len()-1 {
		h.MoveDown()
	}
	if action, _ := h.Select(); action != HubActionQuit {
		t.Errorf("Expected quit action on last entry, got %v", action)
	}

	// First upgrade row: "lure" sorts first in the catalog
	h = NewHubMenu(p)
	h.MoveDown()
	action, bought := h.Select()
	if action != HubActionNone || !bought {
		t.Errorf("Expected purchase on upgrade row, got action %v bought %v", action, bought)
	}
	if p.UpgradeLevel("lure") != 1 {
		t.Errorf("Expected lure level 1, got %d", p.UpgradeLevel("lure"))
	}

	// Broke profiles cannot buy
	p.Gold = 0
	if _, bought := h.Select(); bought {
		t.Errorf("Expected purchase to fail without gold")
	}
}

// TestHubMenuRowsReflectAffordability verifies disabled flags track gold
func TestHubMenuRowsReflectAffordability(t *testing.T) {
	p := NewProfile()
	h := NewHubMenu(p)

	for _, row := range h.Rows()[1 : h.Len()-1] {
		if !row.Disabled {
			t.Errorf("Expected %q disabled with no gold", row.Label)
		}
	}

	p.Gold = 1000
	for _, row := range h.Rows()[1 : h.Len()-1] {
		if row.Disabled {
			t.Errorf("Expected %q affordable with 1000 gold", row.Label)
		}
	}

	// Max out one upgrade and confirm it grays out with the maxed tag
	def := Upgrades["lure"]
	p.Upgrades["lure"] = def.MaxLevel
	for _, row := range h.Rows() {
		if row.Label == def.Name {
			if !row.Disabled || !strings.Contains(row.Detail, "maxed") {
				t.Errorf("Expected maxed row disabled with tag, got %+v", row)
			}
		}
	}
}

// TestHubMenuFooter verifies the bank summary line
func TestHubMenuFooter(t *testing.T) {
	p := NewProfile()
	p.Gold = 120
	p.Runs = 4
	p.Extractions = 2
	p.BestSurvived = 312

	footer := NewHubMenu(p).Footer()

	for _, want := range []string{"gold 120", "runs 4", "extractions 2", "best 05:12"} {
		if !strings.Contains(footer, want) {
			t.Errorf("Expected footer to contain %q, got %q", want, footer)
		}
	}
}
