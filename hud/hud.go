// Package hud is the stand-in for the game engine's HUD layer: it tracks
// visibility and fade state, owns the per-slot ready-delay timers, and
// applies equip decisions once a timer fires. The controller only tells it
// which timer to start or stop.
package hud

import (
	"log/slog"
	"sync"
	"time"

	"cyclehud/model"
)

// Equipper applies an equip decision to "game state" when a slot timer
// fires. The run command passes a closure that queries the controller.
type Equipper func(slot model.Action)

// Sound plays a named feedback effect. Nil disables sound.
type Sound interface {
	Play(effect string)
}

type SimHUD struct {
	mu sync.Mutex

	visible       bool
	alpha         float64
	transitioning bool

	equipDelay time.Duration
	timers     map[model.Action]*time.Timer
	equip      Equipper
	sound      Sound
}

func New(equipDelay time.Duration, equip Equipper, sound Sound) *SimHUD {
	return &SimHUD{
		visible:    true,
		alpha:      1.0,
		equipDelay: equipDelay,
		timers:     make(map[model.Action]*time.Timer),
		equip:      equip,
		sound:      sound,
	}
}

// GetIsTransitioning reports whether a fade is in flight.
func (h *SimHUD) GetIsTransitioning() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.transitioning
}

// SetAlphaTransition starts a fade toward the target alpha. The real engine
// animates this; the simulation just flips the flag for the fade duration.
func (h *SimHUD) SetAlphaTransition(fadeIn bool, alpha float64) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.transitioning = true
	target := alpha
	if !fadeIn {
		target = 0
	}

	time.AfterFunc(200*time.Millisecond, func() {
		h.mu.Lock()
		h.alpha = target
		h.transitioning = false
		h.mu.Unlock()
	})

	slog.Debug("alpha transition", "fadeIn", fadeIn, "target", target)
}

func (h *SimHUD) ToggleHUDVisibility() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.visible = !h.visible
	slog.Info("HUD visibility toggled", "visible", h.visible)
}

func (h *SimHUD) Visible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.visible
}

// NotifyPlayer displays a message to the player. Here that means the log.
func (h *SimHUD) NotifyPlayer(msg string) {
	slog.Info("player notification", "msg", msg)
}

// Apply acts on a key-event response: restart the named slot timer, cancel
// the stopped one. Timer identity is the Action itself.
func (h *SimHUD) Apply(resp model.KeyEventResponse) {
	if !resp.Handled {
		return
	}

	if resp.StopTimer != model.Irrelevant {
		h.stopTimer(resp.StopTimer)
	}
	if resp.StartTimer != model.Irrelevant {
		h.startTimer(resp.StartTimer)
	}
}

func (h *SimHUD) startTimer(slot model.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.timers[slot]; ok {
		t.Stop()
	}

	if h.sound != nil {
		h.sound.Play("advance")
	}

	h.timers[slot] = time.AfterFunc(h.equipDelay, func() {
		h.mu.Lock()
		delete(h.timers, slot)
		h.mu.Unlock()

		if h.equip != nil {
			h.equip(slot)
		}
	})
}

func (h *SimHUD) stopTimer(slot model.Action) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.timers[slot]; ok {
		t.Stop()
		delete(h.timers, slot)
	}
}

// StopAll cancels outstanding timers on shutdown.
func (h *SimHUD) StopAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for slot, t := range h.timers {
		t.Stop()
		delete(h.timers, slot)
	}
}
