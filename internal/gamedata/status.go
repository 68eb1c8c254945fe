package gamedata

// StatusEffectType identifies a status effect. A unit holds at most one
// effect of each type; attaching a duplicate replaces the prior instance.
type StatusEffectType string

const (
	StatusNone StatusEffectType = ""

	// Buffs
	StatusHidden   StatusEffectType = "hidden"   // Stealth; broken by any damage
	StatusBarkskin StatusEffectType = "barkskin" // Flat defense bonus
	StatusDodge    StatusEffectType = "dodge"    // Flat resilience bonus
	StatusRage     StatusEffectType = "rage"     // Flat attack and damage bonus
	StatusInspired StatusEffectType = "inspired" // Flat attack bonus

	// Debuffs
	StatusExposed StatusEffectType = "exposed" // Defense penalty

	// Terminal marker, attached when a unit drops to 0 HP
	StatusUnconscious StatusEffectType = "unconscious"
)

// StatModifiers is the contribution of a single status effect to a unit's
// effective stats.
type StatModifiers struct {
	Attack      int
	Defense     int
	Resilience  int
	DamageBonus int
}

// statusProfile describes which stats an effect type touches and its default
// magnitude. The magnitude here is the single source of truth; call sites must
// never hardcode it.
type statusProfile struct {
	magnitude   int
	attack      bool
	defense     bool
	resilience  bool
	damageBonus bool
}

var statusProfiles = map[StatusEffectType]statusProfile{
	StatusHidden:      {},
	StatusBarkskin:    {magnitude: 3, defense: true},
	StatusDodge:       {magnitude: 2, resilience: true},
	StatusRage:        {magnitude: 2, attack: true, damageBonus: true},
	StatusInspired:    {magnitude: 2, attack: true},
	StatusExposed:     {magnitude: -3, defense: true},
	StatusUnconscious: {},
}

// KnownStatusEffect reports whether t is a recognized effect type.
func KnownStatusEffect(t StatusEffectType) bool {
	_, ok := statusProfiles[t]
	return ok
}

// DefaultMagnitude returns the default magnitude for an effect type, used
// when an effect instance carries no explicit override value.
func DefaultMagnitude(t StatusEffectType) int {
	return statusProfiles[t].magnitude
}

// ModifierFor returns the stat contribution of an effect of type t with the
// given override value. A value of 0 means "use the type default".
func ModifierFor(t StatusEffectType, value int) StatModifiers {
	profile, ok := statusProfiles[t]
	if !ok {
		return StatModifiers{}
	}

	magnitude := profile.magnitude
	if value != 0 {
		magnitude = value
	}

	var m StatModifiers
	if profile.attack {
		m.Attack = magnitude
	}
	if profile.defense {
		m.Defense = magnitude
	}
	if profile.resilience {
		m.Resilience = magnitude
	}
	if profile.damageBonus {
		m.DamageBonus = magnitude
	}
	return m
}
