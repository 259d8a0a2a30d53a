package model

// Spell classification from the raw numbers the game hands over. The host
// looks these up when it builds a CycleEntry for a spell or scroll; we only
// turn them into presentation hints.

// SpellData aggregates the raw spell fields relevant to labeling.
type SpellData struct {
	Hostile   bool
	TwoHanded bool
	School    School
	Level     SpellLevel
	Damage    MagicDamageType
}

// NewSpellData builds SpellData from the raw ints the game reports.
func NewSpellData(hostile bool, resist int, twoHanded bool, school int, skillLevel int) SpellData {
	return SpellData{
		Hostile:   hostile,
		TwoHanded: twoHanded,
		School:    SchoolFromRaw(school),
		Level:     SpellLevelFromSkill(skillLevel),
		Damage:    DamageFromResist(resist),
	}
}

// School is the magic school a spell belongs to. Raw values start at 18
// in the game's actor-value table.
type School int

const (
	SchoolNone School = iota
	SchoolAlteration
	SchoolConjuration
	SchoolDestruction
	SchoolIllusion
	SchoolRestoration
)

func SchoolFromRaw(value int) School {
	switch value {
	case 18:
		return SchoolAlteration
	case 19:
		return SchoolConjuration
	case 20:
		return SchoolDestruction
	case 21:
		return SchoolIllusion
	case 22:
		return SchoolRestoration
	default:
		return SchoolNone
	}
}

func (s School) String() string {
	switch s {
	case SchoolAlteration:
		return "alteration"
	case SchoolConjuration:
		return "conjuration"
	case SchoolDestruction:
		return "destruction"
	case SchoolIllusion:
		return "illusion"
	case SchoolRestoration:
		return "restoration"
	default:
		return "none"
	}
}

// IconFile returns the school emblem for spells with no damage type.
func (s School) IconFile() string {
	switch s {
	case SchoolAlteration:
		return "alteration.svg"
	case SchoolConjuration:
		return "conjuration.svg"
	case SchoolDestruction:
		return "destruction.svg"
	case SchoolIllusion:
		return "illusion.svg"
	case SchoolRestoration:
		return "restoration.svg"
	default:
		return "icon_default.svg"
	}
}

// MagicDamageType is derived from which resistance the spell checks.
type MagicDamageType int

const (
	DamageNone MagicDamageType = iota
	DamageArcane
	DamageDisease
	DamageFire
	DamageFrost
	DamagePoison
	DamageShock
)

// Resist actor-value ids as the game engine numbers them.
const (
	resistFire    = 42
	resistFrost   = 43
	resistShock   = 44
	resistMagic   = 45
	resistDisease = 46
	resistPoison  = 47
)

func DamageFromResist(resist int) MagicDamageType {
	switch resist {
	case resistFire:
		return DamageFire
	case resistFrost:
		return DamageFrost
	case resistShock:
		return DamageShock
	case resistMagic:
		return DamageArcane
	case resistDisease:
		return DamageDisease
	case resistPoison:
		return DamagePoison
	default:
		return DamageNone
	}
}

// Color returns the HUD tint associated with the damage type.
func (d MagicDamageType) Color() Color {
	switch d {
	case DamageFire:
		return Color{R: 216, G: 106, B: 48, A: 255}
	case DamageFrost:
		return Color{R: 92, G: 171, B: 214, A: 255}
	case DamageShock:
		return Color{R: 235, G: 211, B: 80, A: 255}
	case DamageArcane:
		return Color{R: 86, G: 118, B: 199, A: 255}
	case DamageDisease:
		return Color{R: 107, G: 142, B: 35, A: 255}
	case DamagePoison:
		return Color{R: 95, G: 169, B: 102, A: 255}
	default:
		return ColorDefault()
	}
}

// IconFile returns the damage-type icon, or empty when the school icon
// should be used instead.
func (d MagicDamageType) IconFile() string {
	switch d {
	case DamageFire:
		return "spell_fire.svg"
	case DamageFrost:
		return "spell_frost.svg"
	case DamageShock:
		return "spell_shock.svg"
	case DamageArcane:
		return "spell_astral.svg"
	case DamageDisease:
		return "spell_disease.svg"
	case DamagePoison:
		return "spell_poison.svg"
	default:
		return ""
	}
}

// SpellLevel buckets the spell by the skill needed to cast it well.
type SpellLevel int

const (
	LevelNovice SpellLevel = iota
	LevelApprentice
	LevelAdept
	LevelExpert
	LevelMaster
)

func SpellLevelFromSkill(skillLevel int) SpellLevel {
	switch {
	case skillLevel >= 100:
		return LevelMaster
	case skillLevel >= 75:
		return LevelExpert
	case skillLevel >= 50:
		return LevelAdept
	case skillLevel >= 25:
		return LevelApprentice
	default:
		return LevelNovice
	}
}

func (l SpellLevel) String() string {
	switch l {
	case LevelApprentice:
		return "apprentice"
	case LevelAdept:
		return "adept"
	case LevelExpert:
		return "expert"
	case LevelMaster:
		return "master"
	default:
		return "novice"
	}
}

// CastingType describes how a spell is charged and released.
type CastingType int

const (
	CastConstantEffect CastingType = iota
	CastFireAndForget
	CastConcentration
	CastScroll
)

func CastingTypeFromRaw(value int) CastingType {
	switch value {
	case 0:
		return CastConstantEffect
	case 1:
		return CastFireAndForget
	case 2:
		return CastConcentration
	default:
		return CastScroll
	}
}

// Delivery describes what the spell targets.
type Delivery int

const (
	DeliverPlayer Delivery = iota
	DeliverTouch
	DeliverAimed
	DeliverTargetActor
	DeliverTargetLocation
)

func DeliveryFromRaw(value int) Delivery {
	switch value {
	case 0:
		return DeliverPlayer
	case 1:
		return DeliverTouch
	case 2:
		return DeliverAimed
	case 3:
		return DeliverTargetActor
	default:
		return DeliverTargetLocation
	}
}

// SpellEntry builds a CycleEntry for a spell the player favorited, filling
// in the color and kind hints from the classified spell data.
func SpellEntry(formSpec, name string, data SpellData) CycleEntry {
	return CycleEntry{
		FormSpec:  formSpec,
		Name:      name,
		Kind:      KindSpell,
		Color:     data.Damage.Color(),
		TwoHanded: data.TwoHanded,
	}
}
