// Package controller maps classified input events to cycle state changes and
// tells the host what to do about them. There is exactly one controller per
// session; the host may call in from any of its event threads, so every
// public entry point takes the lock for its full duration.
package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"cyclehud/cycle"
	"cyclehud/db"
	"cyclehud/logging"
	"cyclehud/model"
	"cyclehud/settings"
)

var logCtx = logging.ComponentCtx("controller")

// ErrNotImplemented marks extension points that are reserved but not yet
// designed. Callers should surface it loudly instead of guessing.
var ErrNotImplemented = errors.New("not implemented")

// HUD is the visibility surface the host exposes to us. We only ever decide;
// the host draws.
type HUD interface {
	GetIsTransitioning() bool
	SetAlphaTransition(fadeIn bool, alpha float64)
	ToggleHUDVisibility()
}

// Notifier delivers player-facing messages.
type Notifier interface {
	NotifyPlayer(msg string)
}

// Controller owns the cycle data and the advisory equipped-entry snapshot.
type Controller struct {
	mu sync.Mutex

	cycles   *cycle.CycleData
	store    db.Store
	settings *settings.Settings
	hud      HUD
	notifier Notifier

	equipped map[model.Action]model.CycleEntry
}

// New builds the controller, loading cycles from the store. Any load failure
// is logged and replaced with empty cycles; construction never fails, because
// a corrupt save must not take the HUD down with it.
func New(store db.Store, s *settings.Settings, hud HUD, notifier Notifier) *Controller {
	cycles, err := store.Load()
	if err != nil {
		slog.WarnContext(logCtx, "could not load cycle data, starting empty", "error", err)
		cycles = cycle.NewWithMaxLength(s.MaxCycleLength)
	} else {
		// Rebase onto the configured cap: the store has no idea how long
		// the user allows cycles to be.
		rebased := cycle.NewWithMaxLength(s.MaxCycleLength)
		for _, slot := range model.SlotActions {
			rebased.Replace(slot, cycles.Entries(slot))
		}
		cycles = rebased
	}

	return &Controller{
		cycles:   cycles,
		store:    store,
		settings: s,
		hud:      hud,
		notifier: notifier,
		equipped: make(map[model.Action]model.CycleEntry),
	}
}

// HandleKeyEvent classifies the raw key code and dispatches it. The response
// tells the host which per-slot ready-delay timer to start or stop; the host
// owns all timers.
func (c *Controller) HandleKeyEvent(key uint32, button model.ButtonState) model.KeyEventResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	action := c.settings.Classify(key)
	return c.handleAction(action, button)
}

func (c *Controller) handleAction(action model.Action, _ model.ButtonState) model.KeyEventResponse {
	// If the HUD is faded out, the first relevant press only reveals it.
	// This gate outranks all slot logic.
	if action != model.ShowHide && c.settings.FadeEnabled && !c.hud.GetIsTransitioning() {
		c.hud.SetAlphaTransition(true, c.settings.FadeTargetAlpha)
		return model.KeyEventResponse{Handled: true}
	}

	switch {
	case action.HasSlot():
		next := c.cycles.Advance(action, 1)
		c.equipped[action] = next
		// The host applies the equip when this slot's timer fires.
		return model.KeyEventResponse{
			Handled:    true,
			StartTimer: action,
			StopTimer:  model.Irrelevant,
		}
	case action == model.Activate:
		// Finalization of the current selection is not designed yet; for
		// now activation only settles the utility slot.
		return model.KeyEventResponse{
			Handled:    true,
			StartTimer: model.Irrelevant,
			StopTimer:  model.Utility,
		}
	case action == model.ShowHide:
		c.hud.ToggleHUDVisibility()
		return model.KeyEventResponse{Handled: true}
	default:
		return model.KeyEventResponse{}
	}
}

// HandleMenuEvent is called when the player pressed a cycle hotkey while
// hovering an item in a menu. The entry arrives fully formed from the host.
func (c *Controller) HandleMenuEvent(key uint32, item model.CycleEntry) model.MenuEventResponse {
	c.mu.Lock()
	defer c.mu.Unlock()

	action := c.settings.Classify(key)
	return c.toggleItem(action, item)
}

func (c *Controller) toggleItem(action model.Action, item model.CycleEntry) model.MenuEventResponse {
	result := c.cycles.Toggle(action, item)

	verb := "not changed in"
	switch result {
	case model.ItemAdded:
		verb = "added to"
	case model.ItemRemoved:
		verb = "removed from"
	}
	c.notifier.NotifyPlayer(fmt.Sprintf("%s %s %s cycle", item.Name, verb, action.CycleName()))

	if result == model.ItemAdded || result == model.ItemRemoved {
		// Membership changed, flush it. A failed write only costs us
		// durability until the next successful one; the in-memory state
		// and the response stay correct.
		if err := c.store.Save(c.cycles); err != nil {
			slog.WarnContext(logCtx, "failed to write cycle data, gamely continuing", "error", err)
		} else {
			slog.InfoContext(logCtx, "wrote cycle data", "slot", action.String())
		}
	}

	return result
}

// EquippedInSlot reports the entry last advanced to the top of the slot's
// cycle. Non-slot actions and untouched slots yield the sentinel entry.
func (c *Controller) EquippedInSlot(slot model.Action) model.CycleEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !slot.HasSlot() {
		return model.CycleEntry{}
	}
	return c.equipped[slot]
}

// CycleEntries exposes a copy of a slot's rotation for the status surface.
func (c *Controller) CycleEntries(slot model.Action) []model.CycleEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cycles.Entries(slot)
}

// OnEquipChange is the reserved hook for equip changes made outside the
// cycling UI (e.g. through the inventory menu). The eventual contract is
// cycle.SetTop: rotate the item to the front of its slot's cycle if present.
// The surrounding plumbing is not designed yet, so this fails loudly instead
// of pretending to work.
func (c *Controller) OnEquipChange(slot model.Action, item model.CycleEntry) error {
	return fmt.Errorf("equip-change handling: %w", ErrNotImplemented)
}
