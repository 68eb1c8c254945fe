package unit

import "github.com/samdwyer/gridvale/internal/gamedata"

// ApplyDamage and ApplyHealing are the only legal HP mutation paths. The hp
// field is unexported so the compiler enforces this: no other package can
// write it.

// DamageOutcome reports what ApplyDamage changed.
type DamageOutcome struct {
	Dealt        int  // HP actually removed (clamped at the floor)
	BrokeStealth bool // A hidden effect was removed by this hit
	KnockedOut   bool // The unit dropped to 0 HP on this hit
}

// HealOutcome reports what ApplyHealing changed.
type HealOutcome struct {
	Healed  int  // HP actually restored (clamped at the ceiling)
	Revived bool // The unit was unconscious and came back up
}

// ApplyDamage removes HP, clamped at 0. Any positive damage amount breaks
// stealth unconditionally, even when the unit is already at the floor or the
// hit itself drops it to 0. Reaching exactly 0 HP knocks the unit out,
// attaching the permanent unconscious marker in the same step.
func (u *Unit) ApplyDamage(amount int) DamageOutcome {
	var out DamageOutcome

	if amount > 0 && u.HasStatusEffect(gamedata.StatusHidden) {
		u.RemoveStatusEffect(gamedata.StatusHidden)
		out.BrokeStealth = true
	}

	if amount <= 0 || u.hp == 0 {
		// Damage on an already-downed unit is a no-op on HP.
		return out
	}

	out.Dealt = amount
	if out.Dealt > u.hp {
		out.Dealt = u.hp
	}
	u.hp -= out.Dealt

	if u.hp == 0 && !u.unconscious {
		u.unconscious = true
		u.AddStatusEffect(StatusEffect{
			Type:     gamedata.StatusUnconscious,
			Duration: DurationPermanent,
		})
		out.KnockedOut = true
	}
	return out
}

// ApplyHealing restores HP, clamped at MaxHP. Bringing an unconscious unit
// above 0 HP revives it, clearing the unconscious marker in the same step.
// Healing a full-HP, conscious unit is a no-op.
func (u *Unit) ApplyHealing(amount int) HealOutcome {
	var out HealOutcome

	if amount <= 0 {
		return out
	}

	out.Healed = amount
	if u.hp+out.Healed > u.MaxHP {
		out.Healed = u.MaxHP - u.hp
	}
	u.hp += out.Healed

	if u.unconscious && u.hp > 0 {
		u.unconscious = false
		u.RemoveStatusEffect(gamedata.StatusUnconscious)
		out.Revived = true
	}
	return out
}
