package model

// Action is what a raw key code means under the current bindings.
// Irrelevant must stay the zero value: the zero KeyEventResponse relies on it.
type Action int

const (
	Irrelevant Action = iota
	Power
	Utility
	Left
	Right
	Activate
	ShowHide
)

// SlotActions lists the four actions that own a cycle, in HUD order.
var SlotActions = []Action{Power, Utility, Left, Right}

// HasSlot reports whether the action names one of the four equip slots.
func (a Action) HasSlot() bool {
	switch a {
	case Power, Utility, Left, Right:
		return true
	default:
		return false
	}
}

func (a Action) String() string {
	switch a {
	case Power:
		return "power"
	case Utility:
		return "utility"
	case Left:
		return "left"
	case Right:
		return "right"
	case Activate:
		return "activate"
	case ShowHide:
		return "showhide"
	default:
		return "irrelevant"
	}
}

// CycleName is the player-facing name of the slot's cycle, used in
// notification messages.
func (a Action) CycleName() string {
	switch a {
	case Power:
		return "powers"
	case Utility:
		return "utility items"
	case Left:
		return "left-hand"
	case Right:
		return "right-hand"
	default:
		return "any"
	}
}
