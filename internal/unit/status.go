package unit

import (
	"fmt"

	"github.com/samdwyer/gridvale/internal/gamedata"
)

// DurationPermanent marks an effect that never expires on its own; it persists
// until explicitly removed (the unconscious marker, for example).
const DurationPermanent = -1

// StatusEffect is a timed or permanent modifier attached to a unit, keyed by
// type. Value overrides the type's default magnitude; 0 means use the default.
type StatusEffect struct {
	Type     gamedata.StatusEffectType
	Duration int
	Value    int
}

// Permanent returns true if the effect never decrements.
func (e StatusEffect) Permanent() bool {
	return e.Duration == DurationPermanent
}

// AddStatusEffect attaches an effect, replacing any existing effect of the
// same type in place (duration and value included — no stacking, no merging).
// Attaching an unrecognized type is a programmer error.
func (u *Unit) AddStatusEffect(effect StatusEffect) {
	if !gamedata.KnownStatusEffect(effect.Type) {
		panic(fmt.Sprintf("unit: unknown status effect type %q", effect.Type))
	}
	for i, existing := range u.statusEffects {
		if existing.Type == effect.Type {
			u.statusEffects[i] = effect
			return
		}
	}
	u.statusEffects = append(u.statusEffects, effect)
}

// RemoveStatusEffect removes the effect of the given type, if present.
func (u *Unit) RemoveStatusEffect(effectType gamedata.StatusEffectType) {
	for i, existing := range u.statusEffects {
		if existing.Type == effectType {
			u.statusEffects = append(u.statusEffects[:i], u.statusEffects[i+1:]...)
			return
		}
	}
}

// HasStatusEffect returns true if an effect of the given type is active.
func (u *Unit) HasStatusEffect(effectType gamedata.StatusEffectType) bool {
	_, ok := u.GetStatusEffect(effectType)
	return ok
}

// GetStatusEffect looks up the active effect of the given type.
func (u *Unit) GetStatusEffect(effectType gamedata.StatusEffectType) (StatusEffect, bool) {
	for _, existing := range u.statusEffects {
		if existing.Type == effectType {
			return existing, true
		}
	}
	return StatusEffect{}, false
}

// StatusEffects returns a copy of the active effects in attach order.
func (u *Unit) StatusEffects() []StatusEffect {
	out := make([]StatusEffect, len(u.statusEffects))
	copy(out, u.statusEffects)
	return out
}

// ProcessStatusEffects runs end-of-turn bookkeeping: every timed effect loses
// one turn of duration and expired effects are removed. Permanent effects
// never decrement. Returns the types that expired this call, for the caller
// to surface as notifications.
func (u *Unit) ProcessStatusEffects() []gamedata.StatusEffectType {
	var expired []gamedata.StatusEffectType
	remaining := u.statusEffects[:0]

	for _, effect := range u.statusEffects {
		if effect.Permanent() {
			remaining = append(remaining, effect)
			continue
		}
		effect.Duration--
		if effect.Duration <= 0 {
			expired = append(expired, effect.Type)
		} else {
			remaining = append(remaining, effect)
		}
	}

	u.statusEffects = remaining
	return expired
}
