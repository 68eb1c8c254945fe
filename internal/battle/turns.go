package battle

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridvale/internal/combat"
	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/progression"
	"github.com/samdwyer/gridvale/internal/save"
	"github.com/samdwyer/gridvale/internal/unit"
)

// ExpiryNotice reports status effects that wore off a unit at end of round.
type ExpiryNotice struct {
	UnitID  string
	Expired []gamedata.StatusEffectType
}

// BeginRound starts a new round. This is the single place ResetTurnState is
// invoked: calling it from anywhere else would illegally restore spent
// actions mid-round.
func (b *Battle) BeginRound(ctx context.Context) {
	b.Round++
	_, span := b.tracer.Start(ctx, "battle.turn")
	span.SetAttributes(
		attribute.Int("round", b.Round),
		attribute.Int("heroes_up", len(unit.LivingUnits(b.Units, unit.TeamHero))),
		attribute.Int("enemies_up", len(unit.LivingUnits(b.Units, unit.TeamEnemy))),
	)
	span.End()

	for _, u := range b.Units {
		u.ResetTurnState()
	}
}

// EndRound runs end-of-round status bookkeeping for every unit and returns
// expiry notices for the presentation layer.
func (b *Battle) EndRound() []ExpiryNotice {
	var notices []ExpiryNotice
	for _, u := range b.Units {
		if expired := u.ProcessStatusEffects(); len(expired) > 0 {
			notices = append(notices, ExpiryNotice{UnitID: u.ID, Expired: expired})
		}
	}
	return notices
}

// UseAbility resolves an ability from actor to target, spends the action, and
// credits XP. A failed resolution (cost, gate) still returns the result but
// costs nothing: no action spent, no XP.
func (b *Battle) UseAbility(ctx context.Context, actor *unit.Unit, abilityID string, target *unit.Unit) combat.EffectResult {
	def := b.abilities.GetByID(abilityID)
	if def == nil {
		b.logger.Warn("ignoring unknown ability", "ability", abilityID, "actor", actor.ID)
		return combat.EffectResult{Message: "Unknown ability"}
	}
	if !actor.CanAct() {
		return combat.EffectResult{Message: actor.Name + " has no actions left"}
	}
	if target == nil {
		if def.NeedsTarget() {
			return combat.EffectResult{Message: def.Name + " needs a target"}
		}
		target = actor
	}

	_, span := b.tracer.Start(ctx, "battle.ability")
	span.SetAttributes(
		attribute.String("actor", actor.ID),
		attribute.String("ability", def.ID),
		attribute.String("target", target.ID),
		attribute.Int("round", b.Round),
	)
	defer span.End()

	result := b.resolver.Resolve(def, actor, target)
	if !result.Success {
		span.SetAttributes(attribute.Bool("failed", true))
		return result
	}

	actor.MarkActed()
	span.SetAttributes(
		attribute.Int("damage", result.Damage),
		attribute.Int("healing", result.Healing),
	)

	if actor.OnTeam(unit.TeamHero) {
		b.creditXP(actor, target, result)
	}
	return result
}

// UseItem applies a consumable's effect to a target in battle and credits the
// using hero. The inventory decrement happens in the inventory engine before
// this is called.
func (b *Battle) UseItem(ctx context.Context, actor *unit.Unit, def *gamedata.ItemDef, target *unit.Unit) bool {
	if def == nil || !actor.CanAct() {
		return false
	}

	_, span := b.tracer.Start(ctx, "battle.item")
	span.SetAttributes(
		attribute.String("actor", actor.ID),
		attribute.String("item", def.ID),
		attribute.String("target", target.ID),
	)
	defer span.End()

	switch def.Effect.Kind {
	case "heal":
		target.ApplyHealing(def.Effect.Amount)
	case "restore_resource":
		target.RestoreResource(def.Effect.Amount)
	default:
		b.logger.Warn("item has no battle effect", "item", def.ID, "kind", def.Effect.Kind)
		return false
	}

	actor.MarkActed()
	if actor.OnTeam(unit.TeamHero) {
		b.tracker.AwardItemXP(save.HeroID(actor.ID))
	}
	return true
}

// creditXP turns a resolved ability into tracker awards: damage or resource
// XP from the resolver's hint, plus the kill bonus when the hit downed an
// enemy.
func (b *Battle) creditXP(actor, target *unit.Unit, result combat.EffectResult) {
	heroID := save.HeroID(actor.ID)

	switch result.XP.Kind {
	case combat.XPDamage:
		b.tracker.AwardDamageXP(heroID, result.XP.Amount)
	case combat.XPResource:
		b.tracker.AwardResourceXP(heroID, result.XP.Amount)
	}

	if result.KnockedOut && target.OnTeam(unit.TeamEnemy) {
		if xp, ok := b.killXP[target.ID]; ok {
			b.tracker.AwardKillXP(heroID, xp)
		}
	}
}

// Finish finalizes the battle exactly once: it commits accrued XP and folds
// each hero's terminal HP and resource back into the returned states.
// Leveled-up heroes keep their full heal; everyone else leaves with what they
// ended on, floored at 1 HP so no hero enters the next fight unconscious.
func (b *Battle) Finish(ctx context.Context) ([]progression.BattleReward, map[save.HeroID]*save.HeroProgressionState) {
	if b.finished {
		panic("battle: finished twice")
	}
	b.finished = true

	rewards, states := b.tracker.FinalizeBattle()

	leveled := make(map[save.HeroID]bool, len(rewards))
	for _, r := range rewards {
		leveled[r.HeroID] = r.LeveledUp
	}

	for _, u := range b.HeroUnits() {
		id := save.HeroID(u.ID)
		state, ok := states[id]
		if !ok || leveled[id] {
			continue
		}
		hp := u.HP()
		if hp < 1 {
			hp = 1
		}
		state.CurrentHP = hp
		state.CurrentResource = u.CurrentResource()
	}

	_, span := b.tracer.Start(ctx, "battle.finalize")
	span.SetAttributes(
		attribute.Int("rounds", b.Round),
		attribute.Bool("victory", b.Victory()),
	)
	for _, r := range rewards {
		if r.XPEarned > 0 {
			span.SetAttributes(attribute.Int("xp."+string(r.HeroID), r.XPEarned))
		}
	}
	span.End()

	return rewards, states
}
