package unit

// Effective stats are computed on demand: the base stat plus the modifier of
// every matching active status effect. Per-type default magnitudes live in
// gamedata; an effect's Value field overrides them.

import "github.com/samdwyer/gridvale/internal/gamedata"

func modifierFor(e StatusEffect) gamedata.StatModifiers {
	return gamedata.ModifierFor(e.Type, e.Value)
}

// EffectiveAttack returns attack with all active effect modifiers applied.
func (u *Unit) EffectiveAttack() int {
	total := u.Attack
	for _, e := range u.statusEffects {
		total += modifierFor(e).Attack
	}
	return total
}

// EffectiveDefense returns defense with all active effect modifiers applied.
func (u *Unit) EffectiveDefense() int {
	total := u.Defense
	for _, e := range u.statusEffects {
		total += modifierFor(e).Defense
	}
	return total
}

// EffectiveResilience returns resilience with all active effect modifiers applied.
func (u *Unit) EffectiveResilience() int {
	total := u.Resilience
	for _, e := range u.statusEffects {
		total += modifierFor(e).Resilience
	}
	return total
}

// EffectiveDamageBonus returns the unit's flat bonus damage: the permanent
// bonus from progression plus active effect contributions.
func (u *Unit) EffectiveDamageBonus() int {
	total := u.DamageBonus
	for _, e := range u.statusEffects {
		total += modifierFor(e).DamageBonus
	}
	return total
}
