// Package combat resolves abilities against units: cost checks, damage and
// healing math, and status application. It is the only caller of the unit
// package's HP writers during a battle.
package combat

import (
	"fmt"

	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/unit"
)

// XPKind says how an ability use should be credited.
type XPKind int

const (
	XPNone XPKind = iota
	XPDamage
	XPResource
)

// XPHint tells the progression tracker what an ability use earned. Zero-cost
// abilities earn damage-based XP; costed abilities earn resource-based XP on
// the amount spent, regardless of what the ability then did.
type XPHint struct {
	Kind   XPKind
	Amount int
}

// EffectResult is the outcome of resolving one ability against one target.
// For multi-target abilities Resolve is called once per target.
type EffectResult struct {
	Success      bool
	Damage       int
	Healing      int
	StatusAdded  gamedata.StatusEffectType
	BrokeStealth bool
	KnockedOut   bool
	Revived      bool
	XP           XPHint
	Message      string
}

// Resolver calculates and applies ability effects.
type Resolver struct {
	abilities *gamedata.AbilityRegistry
}

// NewResolver creates a resolver over the given ability registry.
func NewResolver(abilities *gamedata.AbilityRegistry) *Resolver {
	return &Resolver{abilities: abilities}
}

// CanUse checks whether a unit can use an ability right now: the level gate is
// met and the resource cost is payable. It does not check targeting or turn
// state; those belong to the battle layer.
func (r *Resolver) CanUse(ability *gamedata.AbilityDef, user *unit.Unit) bool {
	if ability == nil {
		return false
	}
	if ability.LevelGate > 0 && user.Level < ability.LevelGate {
		return false
	}
	if ability.IsFree() {
		return true
	}
	return user.Resource == ability.CostType && user.CurrentResource() >= ability.Cost
}

// Resolve applies an ability from user to target. Failure to pay the cost or
// an unusable ability is a recoverable no-op: the result reports failure and
// nothing is mutated.
func (r *Resolver) Resolve(ability *gamedata.AbilityDef, user, target *unit.Unit) EffectResult {
	if ability == nil {
		return EffectResult{Message: "Invalid ability"}
	}
	if !r.CanUse(ability, user) {
		return EffectResult{Message: fmt.Sprintf("%s can't use %s!", user.Name, ability.Name)}
	}
	if !user.SpendResource(ability.CostType, ability.Cost) {
		return EffectResult{Message: fmt.Sprintf("%s can't pay for %s!", user.Name, ability.Name)}
	}

	var result EffectResult
	switch ability.EffectType {
	case gamedata.EffectDamage:
		result = r.resolveDamage(ability, user, target)
	case gamedata.EffectHeal:
		result = r.resolveHeal(ability, user, target)
	case gamedata.EffectBuff, gamedata.EffectDebuff:
		result = r.resolveStatus(ability, user, target)
	default:
		return EffectResult{Message: "Unknown ability effect type"}
	}

	if result.Success {
		result.XP = xpHint(ability, result)
	}
	return result
}

func xpHint(ability *gamedata.AbilityDef, result EffectResult) XPHint {
	if !ability.IsFree() {
		return XPHint{Kind: XPResource, Amount: ability.Cost}
	}
	if result.Damage > 0 || ability.EffectType == gamedata.EffectDamage {
		amount := result.Damage
		if amount < 1 {
			amount = 1
		}
		return XPHint{Kind: XPDamage, Amount: amount}
	}
	return XPHint{}
}

func (r *Resolver) resolveDamage(ability *gamedata.AbilityDef, user, target *unit.Unit) EffectResult {
	damage := r.CalculateDamage(ability, user, target)
	outcome := target.ApplyDamage(damage)

	result := EffectResult{
		Success:      true,
		Damage:       damage,
		BrokeStealth: outcome.BrokeStealth,
		KnockedOut:   outcome.KnockedOut,
		Message:      fmt.Sprintf("%s uses %s on %s!", user.Name, ability.Name, target.Name),
	}

	// Riders like expose land even on a downed target
	if ability.StatusEffect != gamedata.StatusNone {
		target.AddStatusEffect(unit.StatusEffect{
			Type:     ability.StatusEffect,
			Duration: ability.StatusDuration,
		})
		result.StatusAdded = ability.StatusEffect
	}
	return result
}

func (r *Resolver) resolveHeal(ability *gamedata.AbilityDef, user, target *unit.Unit) EffectResult {
	healing := r.CalculateHealing(ability, user)
	outcome := target.ApplyHealing(healing)

	result := EffectResult{
		Success: true,
		Healing: outcome.Healed,
		Revived: outcome.Revived,
		Message: fmt.Sprintf("%s uses %s on %s!", user.Name, ability.Name, target.Name),
	}

	if ability.StatusEffect != gamedata.StatusNone {
		target.AddStatusEffect(unit.StatusEffect{
			Type:     ability.StatusEffect,
			Duration: ability.StatusDuration,
		})
		result.StatusAdded = ability.StatusEffect
	}
	return result
}

func (r *Resolver) resolveStatus(ability *gamedata.AbilityDef, user, target *unit.Unit) EffectResult {
	if ability.StatusEffect == gamedata.StatusNone {
		return EffectResult{Message: ability.Name + " has no status effect defined"}
	}

	target.AddStatusEffect(unit.StatusEffect{
		Type:     ability.StatusEffect,
		Duration: ability.StatusDuration,
	})

	return EffectResult{
		Success:     true,
		StatusAdded: ability.StatusEffect,
		Message:     fmt.Sprintf("%s uses %s on %s!", user.Name, ability.Name, target.Name),
	}
}

// CalculateDamage computes damage without applying it, for AI scoring and
// target previews. Effective stats fold in active status effects.
func (r *Resolver) CalculateDamage(ability *gamedata.AbilityDef, user, target *unit.Unit) int {
	if ability == nil || ability.EffectType != gamedata.EffectDamage {
		return 0
	}

	var damage int
	switch ability.DamageType {
	case gamedata.DamageMagical:
		damage = ability.BasePower + user.Magic - target.EffectiveResilience()
	case gamedata.DamageTrue:
		return ability.BasePower
	default:
		damage = ability.BasePower + user.EffectiveAttack() + user.EffectiveDamageBonus() - target.EffectiveDefense()
	}
	if damage < 1 {
		damage = 1
	}
	return damage
}

// CalculateHealing computes healing without applying it.
func (r *Resolver) CalculateHealing(ability *gamedata.AbilityDef, user *unit.Unit) int {
	if ability == nil || ability.EffectType != gamedata.EffectHeal {
		return 0
	}
	healing := ability.BasePower + user.Magic
	if healing < 1 {
		healing = 1
	}
	return healing
}
