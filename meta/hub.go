package meta

import "fmt"

// HubAction is what a hub menu selection asks the caller to do
type HubAction int

const (
	HubActionNone HubAction = iota
	HubActionStart
	HubActionQuit
)

// HubRow is one rendered menu line
type HubRow struct {
	Label    string
	Detail   string
	Disabled bool
}

// HubMenu drives the between-runs screen: start, buy permanent
// upgrades, quit. Purchases mutate the profile in place; the caller
// persists it
type HubMenu struct {
	profile *Profile
	order   []UpgradeID
	cursor  int
}

// NewHubMenu creates a menu over the given profile
func NewHubMenu(profile *Profile) *HubMenu {
	return &HubMenu{
		profile: profile,
		order:   UpgradeIDs(),
	}
}

// Len returns the number of menu entries
func (h *HubMenu) Len() int {
	return len(h.order) + 2
}

// Cursor returns the highlighted entry index
func (h *HubMenu) Cursor() int {
	return h.cursor
}

// MoveUp moves the cursor with wraparound
func (h *HubMenu) MoveUp() {
	h.cursor = (h.cursor + h.Len() - 1) % h.Len()
}

// MoveDown moves the cursor with wraparound
func (h *HubMenu) MoveDown() {
	h.cursor = (h.cursor + 1) % h.Len()
}

// Select activates the highlighted entry. Upgrade rows attempt a
// purchase and report it in bought; start and quit are returned for the
// caller to act on
func (h *HubMenu) Select() (action HubAction, bought bool) {
	switch {
	case h.cursor == 0:
		return HubActionStart, false
	case h.cursor == h.Len()-1:
		return HubActionQuit, false
	default:
		id := h.order[h.cursor-1]
		return HubActionNone, h.profile.Purchase(id)
	}
}

// Rows builds the current menu lines. Upgrade rows show owned level,
// next cost, and gray out when maxed or unaffordable
func (h *HubMenu) Rows() []HubRow {
	rows := make([]HubRow, 0, h.Len())
	rows = append(rows, HubRow{Label: "Begin Run"})

	for _, id := range h.order {
		def := Upgrades[id]
		owned := h.profile.UpgradeLevel(id)
		row := HubRow{Label: def.Name}
		if cost, ok := h.profile.NextCost(id); ok {
			row.Detail = fmt.Sprintf("%s  Lv %d/%d  cost %d", def.Detail, owned, def.MaxLevel, cost)
			row.Disabled = h.profile.Gold < cost
		} else {
			row.Detail = fmt.Sprintf("%s  Lv %d/%d  maxed", def.Detail, owned, def.MaxLevel)
			row.Disabled = true
		}
		rows = append(rows, row)
	}

	rows = append(rows, HubRow{Label: "Quit"})
	return rows
}

// Footer summarizes the bank and lifetime record for the menu frame
func (h *HubMenu) Footer() string {
	return fmt.Sprintf("gold %d   runs %d   extractions %d   best %02d:%02d",
		h.profile.Gold, h.profile.Runs, h.profile.Extractions,
		int(h.profile.BestSurvived)/60, int(h.profile.BestSurvived)%60)
}
