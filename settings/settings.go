// Package settings holds the user-configurable key bindings and HUD options.
// Values come from the viper config the CLI layer initializes; the controller
// only ever sees the resolved struct.
package settings

import (
	"time"

	"cyclehud/model"

	"github.com/spf13/viper"
)

// Settings is a resolved snapshot of the user's configuration.
type Settings struct {
	// Raw key codes bound to each action, as the host reports them.
	Power    uint32
	Utility  uint32
	Left     uint32
	Right    uint32
	Activate uint32
	ShowHide uint32

	// Fade-based show/hide of the HUD.
	FadeEnabled     bool
	FadeTargetAlpha float64

	// How long a slot stays highlighted before the host applies the equip.
	EquipDelay time.Duration

	MaxCycleLength int
	StorePath      string
}

// Default key codes follow the original mod's defaults (DirectX scan codes).
func Default() *Settings {
	return &Settings{
		Power:           3,  // '2'
		Utility:         4,  // '3'
		Left:            5,  // '4'
		Right:           6,  // '5'
		Activate:        7,  // '6'
		ShowHide:        8,  // '7'
		FadeEnabled:     false,
		FadeTargetAlpha: 1.0,
		EquipDelay:      750 * time.Millisecond,
		MaxCycleLength:  15,
		StorePath:       "./cycles.sqlite",
	}
}

// FromViper overlays the config file values onto the defaults. Keys missing
// from the config keep their default binding.
func FromViper(v *viper.Viper) *Settings {
	s := Default()

	setKey := func(target *uint32, name string) {
		if v.IsSet(name) {
			*target = v.GetUint32(name)
		}
	}

	setKey(&s.Power, "keys.power")
	setKey(&s.Utility, "keys.utility")
	setKey(&s.Left, "keys.left")
	setKey(&s.Right, "keys.right")
	setKey(&s.Activate, "keys.activate")
	setKey(&s.ShowHide, "keys.showhide")

	if v.IsSet("fade.enabled") {
		s.FadeEnabled = v.GetBool("fade.enabled")
	}
	if v.IsSet("fade.target-alpha") {
		s.FadeTargetAlpha = v.GetFloat64("fade.target-alpha")
	}
	if v.IsSet("equip-delay-ms") {
		s.EquipDelay = time.Duration(v.GetInt("equip-delay-ms")) * time.Millisecond
	}
	if v.IsSet("max-cycle-length") {
		s.MaxCycleLength = v.GetInt("max-cycle-length")
	}
	if v.IsSet("store") {
		s.StorePath = v.GetString("store")
	}

	return s
}

// Classify turns a raw key code into the action it is bound to.
// Unbound keys are Irrelevant, which every caller treats as a no-op.
func (s *Settings) Classify(key uint32) model.Action {
	switch key {
	case s.Power:
		return model.Power
	case s.Utility:
		return model.Utility
	case s.Left:
		return model.Left
	case s.Right:
		return model.Right
	case s.Activate:
		return model.Activate
	case s.ShowHide:
		return model.ShowHide
	default:
		return model.Irrelevant
	}
}
