// Package input translates terminal events into the engine's input
// surface: a continuous movement vector plus edge-triggered actions.
//
// Terminals never report key releases, so held movement is reconstructed
// from key auto-repeat: each press or repeat of a direction key arms that
// axis for a short window, and the axis falls back to neutral when the
// window lapses without a refresh.
package input

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"glyphstorm/engine"
	"glyphstorm/parameter"
	"glyphstorm/vmath"
)

// Handler accumulates input between frames. HandleEvent runs on the
// event-polling goroutine's delivery into the main loop; MoveVector,
// Consume and Flush run on the main loop. The caller serializes them by
// draining the event channel before stepping the game.
type Handler struct {
	now func() time.Time

	xDir   int
	xUntil time.Time
	yDir   int
	yUntil time.Time

	pressed map[engine.Action]bool
}

func NewHandler() *Handler {
	return NewHandlerWithSource(time.Now)
}

// NewHandlerWithSource injects the time source, letting tests control
// hold-window expiry.
func NewHandlerWithSource(now func() time.Time) *Handler {
	return &Handler{
		now:     now,
		pressed: make(map[engine.Action]bool),
	}
}

// HandleEvent folds one terminal event into the input state. Unhandled
// events are ignored.
func (h *Handler) HandleEvent(ev tcell.Event) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return
	}

	switch key.Key() {
	case tcell.KeyUp:
		h.holdY(-1)
		h.press(engine.ActionUp)
	case tcell.KeyDown:
		h.holdY(1)
		h.press(engine.ActionDown)
	case tcell.KeyLeft:
		h.holdX(-1)
	case tcell.KeyRight:
		h.holdX(1)
	case tcell.KeyEnter:
		h.press(engine.ActionConfirm)
	case tcell.KeyEscape:
		h.press(engine.ActionPause)
	case tcell.KeyF1:
		h.press(engine.ActionDebug)
	case tcell.KeyCtrlC:
		h.press(engine.ActionQuit)
	case tcell.KeyRune:
		h.handleRune(key.Rune())
	}
}

func (h *Handler) handleRune(r rune) {
	switch r {
	case 'w', 'k':
		h.holdY(-1)
		h.press(engine.ActionUp)
	case 's', 'j':
		h.holdY(1)
		h.press(engine.ActionDown)
	case 'a', 'h':
		h.holdX(-1)
	case 'd', 'l':
		h.holdX(1)
	case ' ':
		h.press(engine.ActionConfirm)
	case 'p':
		h.press(engine.ActionPause)
	case 'q':
		h.press(engine.ActionCancel)
	case '1':
		h.press(engine.ActionChoice1)
	case '2':
		h.press(engine.ActionChoice2)
	case '3':
		h.press(engine.ActionChoice3)
	case 'm':
		h.press(engine.ActionMute)
	case '`':
		h.press(engine.ActionDebug)
	}
}

func (h *Handler) holdX(dir int) {
	h.xDir = dir
	h.xUntil = h.now().Add(holdWindow())
}

func (h *Handler) holdY(dir int) {
	h.yDir = dir
	h.yUntil = h.now().Add(holdWindow())
}

func (h *Handler) press(a engine.Action) {
	h.pressed[a] = true
}

// Inject arms an action directly, bypassing the key map. The main loop
// uses it to pause the game when the terminal loses focus.
func (h *Handler) Inject(a engine.Action) {
	h.press(a)
}

func holdWindow() time.Duration {
	return time.Duration(parameter.InputHoldSeconds * float64(time.Second))
}

// MoveVector returns the live movement intent, normalized for diagonals.
func (h *Handler) MoveVector() vmath.Vec2 {
	now := h.now()
	x, y := 0.0, 0.0
	if h.xDir != 0 && now.Before(h.xUntil) {
		x = float64(h.xDir)
	}
	if h.yDir != 0 && now.Before(h.yUntil) {
		y = float64(h.yDir)
	}
	return vmath.V(x, y).Normalize()
}

// Consume reports and clears a pending action. Each press yields one true.
func (h *Handler) Consume(a engine.Action) bool {
	if h.pressed[a] {
		delete(h.pressed, a)
		return true
	}
	return false
}

// Flush drops all unconsumed actions. The main loop calls it after each
// frame so presses never leak into a later phase: an up-arrow tapped
// during play must not navigate a menu opened seconds later.
func (h *Handler) Flush() {
	clear(h.pressed)
}
