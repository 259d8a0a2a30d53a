package model

// CycleEntry describes one favorited item as the host handed it to us.
// The zero value is the "nothing equipped" sentinel; the core never
// fabricates identity fields on its own.
type CycleEntry struct {
	// FormSpec is the stable identity of the item, e.g. "Skyrim.esm|0x000139b3".
	FormSpec  string
	Name      string
	Kind      EntryKind
	Color     Color
	TwoHanded bool
	HasCount  bool
	Count     int
}

// IsEmpty reports whether the entry is the sentinel "no item" value.
func (e CycleEntry) IsEmpty() bool {
	return e.FormSpec == ""
}

// SameIdentity compares entries by identity only, ignoring display metadata.
// Metadata can go stale between game sessions; identity cannot.
func (e CycleEntry) SameIdentity(other CycleEntry) bool {
	return e.FormSpec == other.FormSpec
}

// EntryKind is a coarse item category, used to pick an icon.
type EntryKind int

const (
	KindEmpty EntryKind = iota
	KindWeaponOneHanded
	KindWeaponTwoHanded
	KindShield
	KindSpell
	KindScroll
	KindPower
	KindPotion
	KindFood
	KindPoison
	KindArmor
	KindLight
	KindMisc
)

var kindIcons = map[EntryKind]string{
	KindEmpty:           "icon_default.svg",
	KindWeaponOneHanded: "weapon_one_handed.svg",
	KindWeaponTwoHanded: "weapon_two_handed.svg",
	KindShield:          "shield.svg",
	KindSpell:           "spell_default.svg",
	KindScroll:          "scroll.svg",
	KindPower:           "power.svg",
	KindPotion:          "potion_default.svg",
	KindFood:            "food.svg",
	KindPoison:          "poison_default.svg",
	KindArmor:           "armor_clothing.svg",
	KindLight:           "torch.svg",
	KindMisc:            "icon_default.svg",
}

// IconFile returns the icon file name the HUD should draw for this kind.
func (k EntryKind) IconFile() string {
	if name, ok := kindIcons[k]; ok {
		return name
	}
	return kindIcons[KindEmpty]
}

// Color is a presentation hint carried alongside an entry.
type Color struct {
	R, G, B, A uint8
}

// ColorDefault is white at full alpha, what the HUD falls back to.
func ColorDefault() Color {
	return Color{R: 255, G: 255, B: 255, A: 255}
}

// ButtonState is the press phase of the raw event as the host saw it.
type ButtonState struct {
	IsDown bool
	IsUp   bool
}

// KeyEventResponse tells the host what to do after a key event. The zero
// value means "not handled, touch no timers" - Irrelevant is the zero Action,
// so an empty response is safe to return from any path.
type KeyEventResponse struct {
	Handled    bool
	StartTimer Action
	StopTimer  Action
}

// MenuEventResponse reports what a favorites toggle did to a cycle.
type MenuEventResponse int

const (
	NoChange MenuEventResponse = iota
	ItemAdded
	ItemRemoved
	ItemInvalid
	TooManyItems
)

func (r MenuEventResponse) String() string {
	switch r {
	case ItemAdded:
		return "added"
	case ItemRemoved:
		return "removed"
	case ItemInvalid:
		return "invalid"
	case TooManyItems:
		return "too-many"
	default:
		return "no-change"
	}
}
