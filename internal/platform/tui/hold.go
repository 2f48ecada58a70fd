package tui

import "github.com/vovakirdan/bulletstorm/internal/core"

// HoldTracker turns a stream of key presses into held actions.
//
// Terminals report presses (and auto-repeats) but never releases, so an
// action counts as held until window milliseconds pass without another
// press of it. Opposite directions cancel each other: the newest wins.
type HoldTracker struct {
	window int64
	until  map[core.Action]int64
}

// NewHoldTracker creates a tracker with the given hold window.
func NewHoldTracker(windowMs int64) *HoldTracker {
	return &HoldTracker{
		window: windowMs,
		until:  make(map[core.Action]int64),
	}
}

// Press records a press of a at time now.
func (h *HoldTracker) Press(a core.Action, now int64) {
	if a == core.ActionNone {
		return
	}
	switch a {
	case core.ActionLeft:
		delete(h.until, core.ActionRight)
	case core.ActionRight:
		delete(h.until, core.ActionLeft)
	}
	h.until[a] = now + h.window
}

// Held reports whether a is held at time now.
func (h *HoldTracker) Held(a core.Action, now int64) bool {
	until, ok := h.until[a]
	return ok && now < until
}

// Frame returns the input frame for time now and forgets expired holds.
func (h *HoldTracker) Frame(now int64) core.InputFrame {
	frame := core.NewInputFrame()
	for a, until := range h.until {
		if now >= until {
			delete(h.until, a)
			continue
		}
		frame.Set(a)
	}
	return frame
}

// Reset releases everything.
func (h *HoldTracker) Reset() {
	clear(h.until)
}
