package game

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gridvale/internal/battle"
	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/telemetry"
	"github.com/samdwyer/gridvale/internal/unit"
)

// encounterState tracks whose turn it is within the current battle. Hero
// turns are interactive; once every hero has spent its actions, the enemies
// act and the round closes.
type encounterState struct {
	battle    *battle.Battle
	activeIdx int
}

// active returns the hero currently choosing an action, or nil.
func (e *encounterState) active() *unit.Unit {
	heroes := e.battle.HeroUnits()
	if e.activeIdx < 0 || e.activeIdx >= len(heroes) {
		return nil
	}
	return heroes[e.activeIdx]
}

// advance moves to the next hero with actions remaining. Returns false when
// the hero phase is over.
func (e *encounterState) advance() bool {
	heroes := e.battle.HeroUnits()
	for i := e.activeIdx; i < len(heroes); i++ {
		if heroes[i].CanAct() {
			e.activeIdx = i
			return true
		}
	}
	return false
}

func (g *Game) startBattle(ctx context.Context) {
	defs := battle.ComposeEncounter(g.enemies, g.rng, 1+g.rng.Intn(3))

	tracer := telemetry.Tracer("battle")
	_, span := tracer.Start(ctx, "battle.start")
	span.SetAttributes(
		attribute.Int("party_size", len(g.data.Heroes)),
		attribute.Int("enemy_count", len(defs)),
	)
	span.End()

	b := battle.New(battle.Config{
		HeroStates:       g.data.Heroes,
		EnemyDefs:        defs,
		Heroes:           g.heroes,
		Abilities:        g.abilities,
		Table:            g.table,
		EquipmentBonuses: g.loot.EquipmentBonuses,
		Rng:              g.rng,
		Tracer:           tracer,
		Logger:           g.logger,
	})
	b.BeginRound(ctx)

	g.encounter = &encounterState{battle: b}
	g.encounter.advance()
	g.state = StateBattle
	g.message = fmt.Sprintf("Ambushed by %d foes! Press 1-9 to use an ability, i for an item.", len(defs))
}

func (g *Game) handleBattleKey(ctx context.Context, ev *tcell.EventKey) {
	if ev.Key() != tcell.KeyRune {
		return
	}
	actor := g.encounter.active()
	if actor == nil {
		return
	}

	r := ev.Rune()
	switch {
	case r >= '1' && r <= '9':
		ids := g.encounter.battle.AbilityIDs(actor)
		idx := int(r - '1')
		if idx >= len(ids) {
			g.message = "No such ability."
			return
		}
		g.heroAbility(ctx, actor, ids[idx])
	case r == 'i':
		g.heroItem(ctx, actor)
	case r == ' ':
		// Pass: spend the remaining actions
		for actor.CanAct() {
			actor.MarkActed()
		}
		g.afterHeroAction(ctx)
	}
}

func (g *Game) heroAbility(ctx context.Context, actor *unit.Unit, abilityID string) {
	def := g.abilities.GetByID(abilityID)
	if def == nil {
		g.message = "No such ability."
		return
	}

	target := g.heroTarget(actor, def)
	if target == nil {
		g.message = "No valid target."
		return
	}

	result := g.encounter.battle.UseAbility(ctx, actor, abilityID, target)
	g.message = result.Message
	if result.Success {
		if result.Damage > 0 {
			g.message = fmt.Sprintf("%s %s takes %d damage!", result.Message, target.Name, result.Damage)
		} else if result.Healing > 0 {
			g.message = fmt.Sprintf("%s %s recovers %d HP!", result.Message, target.Name, result.Healing)
		}
		g.afterHeroAction(ctx)
	}
}

// heroTarget picks a sensible default target: the weakest living enemy for
// offense, the most wounded living hero for support.
func (g *Game) heroTarget(actor *unit.Unit, def *gamedata.AbilityDef) *unit.Unit {
	b := g.encounter.battle
	switch {
	case def.TargetType == gamedata.TargetSelf:
		return actor
	case def.IsOffensive():
		return weakestLiving(b.EnemyUnits())
	default:
		return mostWounded(b.HeroUnits())
	}
}

func (g *Game) heroItem(ctx context.Context, actor *unit.Unit) {
	// Use the first held consumable on the most wounded hero
	for _, def := range g.items.GetByType(gamedata.ItemConsumable) {
		item, ok := g.loot.UseConsumable(def.ID)
		if !ok {
			continue
		}
		target := actor
		if item.Effect.Kind == "heal" {
			if wounded := mostWounded(g.encounter.battle.HeroUnits()); wounded != nil {
				target = wounded
			}
		}
		if g.encounter.battle.UseItem(ctx, actor, item, target) {
			g.message = fmt.Sprintf("%s uses %s on %s.", actor.Name, item.Name, target.Name)
			g.afterHeroAction(ctx)
		}
		return
	}
	g.message = "No items left."
}

// afterHeroAction advances the turn order, runs the enemy phase when the
// hero phase ends, and closes out the battle when a side falls.
func (g *Game) afterHeroAction(ctx context.Context) {
	b := g.encounter.battle
	if b.Over() {
		g.endBattle(ctx)
		return
	}
	if g.encounter.advance() {
		return
	}

	g.enemyPhase(ctx)
	if b.Over() {
		g.endBattle(ctx)
		return
	}

	b.EndRound()
	b.BeginRound(ctx)
	g.encounter.activeIdx = 0
	g.encounter.advance()
}

func (g *Game) enemyPhase(ctx context.Context) {
	b := g.encounter.battle
	for _, enemy := range b.EnemyUnits() {
		if !enemy.CanAct() {
			continue
		}
		ability := b.SelectEnemyAbility(enemy, g.rng)
		target := b.SelectEnemyTarget(enemy, ability)
		if ability == nil || target == nil {
			continue
		}
		result := b.UseAbility(ctx, enemy, ability.ID, target)
		if result.Success && result.Damage > 0 {
			g.message = fmt.Sprintf("%s %s takes %d damage!", result.Message, target.Name, result.Damage)
		}
		if b.Defeat() {
			return
		}
	}
}

func (g *Game) endBattle(ctx context.Context) {
	b := g.encounter.battle
	victory := b.Victory()

	rewards, states := b.Finish(ctx)
	for id, state := range states {
		g.data.Heroes[id] = state
	}

	summary := "Defeated... the party limps back."
	if victory {
		summary = "Victory!"
		for _, r := range rewards {
			switch {
			case r.LeveledUp:
				summary += fmt.Sprintf(" %s reaches level %d!", string(r.HeroID), r.NewLevel)
			case r.XPEarned > 0 && r.NewLevel < g.table.MaxLevel():
				toNext := g.table.ThresholdForLevel(r.NewLevel+1) - r.TotalXP
				summary += fmt.Sprintf(" %s +%d XP (%d to next).", string(r.HeroID), r.XPEarned, toNext)
			case r.XPEarned > 0:
				summary += fmt.Sprintf(" %s +%d XP.", string(r.HeroID), r.XPEarned)
			}
		}
	}
	g.message = summary

	g.syncSession(time.Now())
	if err := g.store.Save(g.data); err != nil {
		g.logger.Error("failed to save after battle", "err", err)
	}

	g.encounter = nil
	g.state = StateExplore
}

func weakestLiving(units []*unit.Unit) *unit.Unit {
	var weakest *unit.Unit
	for _, u := range units {
		if u.Unconscious() {
			continue
		}
		if weakest == nil || u.HP() < weakest.HP() {
			weakest = u
		}
	}
	return weakest
}

func mostWounded(units []*unit.Unit) *unit.Unit {
	var worst *unit.Unit
	for _, u := range units {
		if u.Unconscious() {
			continue
		}
		missing := u.MaxHP - u.HP()
		if worst == nil || missing > worst.MaxHP-worst.HP() {
			worst = u
		}
	}
	return worst
}
