// Package cycle holds the per-slot rotations of favorited items and the two
// operations that ever change them: Advance rotates, Toggle edits membership.
package cycle

import (
	"cyclehud/model"
)

// DefaultMaxLength caps how many items a single slot can hold. The HUD can
// only usefully show so many, and a runaway favorites list should not grow
// the save data without bound.
const DefaultMaxLength = 15

// CycleData owns the four rotations. Order is meaningful: the first element
// is the top of the cycle, the item considered equipped after an advance.
// Entries are unique by identity within a slot; the same item may appear in
// both hands.
type CycleData struct {
	maxLength int

	power   []model.CycleEntry
	utility []model.CycleEntry
	left    []model.CycleEntry
	right   []model.CycleEntry
}

func New() *CycleData {
	return &CycleData{maxLength: DefaultMaxLength}
}

// NewWithMaxLength is used when settings override the per-slot cap.
func NewWithMaxLength(maxLength int) *CycleData {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &CycleData{maxLength: maxLength}
}

// slotFor returns the backing slice for a slot action, or nil for actions
// that have no cycle.
func (c *CycleData) slotFor(slot model.Action) *[]model.CycleEntry {
	switch slot {
	case model.Power:
		return &c.power
	case model.Utility:
		return &c.utility
	case model.Left:
		return &c.left
	case model.Right:
		return &c.right
	default:
		return nil
	}
}

// Advance rotates the slot's cycle left by distance and returns the new top.
// It never changes membership: an empty slot returns the sentinel entry and
// stays empty, and distance is reduced modulo the cycle length.
func (c *CycleData) Advance(slot model.Action, distance int) model.CycleEntry {
	entries := c.slotFor(slot)
	if entries == nil || len(*entries) == 0 {
		return model.CycleEntry{}
	}

	n := len(*entries)
	distance %= n
	if distance < 0 {
		distance += n
	}
	if distance != 0 {
		rotated := make([]model.CycleEntry, 0, n)
		rotated = append(rotated, (*entries)[distance:]...)
		rotated = append(rotated, (*entries)[:distance]...)
		*entries = rotated
	}

	return (*entries)[0]
}

// Top returns the current top of the slot's cycle without rotating.
func (c *CycleData) Top(slot model.Action) model.CycleEntry {
	return c.Advance(slot, 0)
}

// Toggle removes the entry if an entry with the same identity is present,
// otherwise appends it at the end. This is the only membership mutation, so
// callers persist after it and only after it.
func (c *CycleData) Toggle(slot model.Action, entry model.CycleEntry) model.MenuEventResponse {
	entries := c.slotFor(slot)
	if entries == nil {
		return model.NoChange
	}
	if entry.IsEmpty() {
		return model.ItemInvalid
	}

	for i, existing := range *entries {
		if existing.SameIdentity(entry) {
			*entries = append((*entries)[:i], (*entries)[i+1:]...)
			return model.ItemRemoved
		}
	}

	if len(*entries) >= c.maxLength {
		return model.TooManyItems
	}

	*entries = append(*entries, entry)
	return model.ItemAdded
}

// SetTop rotates the slot so the entry with the given identity becomes the
// top, if it is present at all. Reports whether anything moved. This is the
// equip-change contract: an item equipped through the inventory menu should
// become the current selection of its cycle.
func (c *CycleData) SetTop(slot model.Action, entry model.CycleEntry) bool {
	entries := c.slotFor(slot)
	if entries == nil {
		return false
	}

	for i, existing := range *entries {
		if existing.SameIdentity(entry) {
			c.Advance(slot, i)
			return true
		}
	}
	return false
}

// Entries returns a copy of the slot's rotation in order.
func (c *CycleData) Entries(slot model.Action) []model.CycleEntry {
	entries := c.slotFor(slot)
	if entries == nil {
		return nil
	}

	result := make([]model.CycleEntry, len(*entries))
	copy(result, *entries)
	return result
}

// Replace swaps in a whole rotation for a slot, deduplicating by identity
// and honoring the cap. Used by the store when loading and merging.
func (c *CycleData) Replace(slot model.Action, entries []model.CycleEntry) {
	target := c.slotFor(slot)
	if target == nil {
		return
	}

	seen := make(map[string]bool, len(entries))
	result := make([]model.CycleEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.IsEmpty() || seen[entry.FormSpec] {
			continue
		}
		if len(result) >= c.maxLength {
			break
		}
		seen[entry.FormSpec] = true
		result = append(result, entry)
	}

	*target = result
}

// Len reports how many items the slot's cycle holds.
func (c *CycleData) Len(slot model.Action) int {
	entries := c.slotFor(slot)
	if entries == nil {
		return 0
	}
	return len(*entries)
}

// Names lists the display names in rotation order, for logs and the status
// endpoint.
func (c *CycleData) Names(slot model.Action) []string {
	entries := c.Entries(slot)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name)
	}
	return names
}
