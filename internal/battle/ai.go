package battle

import (
	"math/rand"

	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/unit"
)

// AbilityIDs returns a unit's template ability list for menus and AI.
func (b *Battle) AbilityIDs(u *unit.Unit) []string {
	return b.abilityIDs[u.ID]
}

// SelectEnemyAbility picks an ability for an enemy's turn: a random usable
// one, falling back to the first listed (conventionally a free attack).
func (b *Battle) SelectEnemyAbility(enemy *unit.Unit, rng *rand.Rand) *gamedata.AbilityDef {
	defs := b.abilities.GetMultiple(b.abilityIDs[enemy.ID])
	if len(defs) == 0 {
		return nil
	}

	for _, idx := range rng.Perm(len(defs)) {
		if b.resolver.CanUse(defs[idx], enemy) {
			return defs[idx]
		}
	}
	return defs[0]
}

// SelectEnemyTarget picks a target for an enemy ability. Offensive abilities
// go after the most wounded hero; support abilities go to the most wounded
// enemy. Hidden heroes are skipped while any visible hero stands.
func (b *Battle) SelectEnemyTarget(enemy *unit.Unit, ability *gamedata.AbilityDef) *unit.Unit {
	if ability == nil {
		return nil
	}

	switch ability.TargetType {
	case gamedata.TargetSelf:
		return enemy
	case gamedata.TargetSingleAlly, gamedata.TargetAllAllies:
		return lowestHP(unit.LivingUnits(b.Units, unit.TeamEnemy))
	default:
		heroes := unit.LivingUnits(b.Units, unit.TeamHero)
		var visible []*unit.Unit
		for _, h := range heroes {
			if !h.HasStatusEffect(gamedata.StatusHidden) {
				visible = append(visible, h)
			}
		}
		if len(visible) > 0 {
			return lowestHP(visible)
		}
		return lowestHP(heroes)
	}
}

func lowestHP(units []*unit.Unit) *unit.Unit {
	var lowest *unit.Unit
	for _, u := range units {
		if lowest == nil || u.HP() < lowest.HP() {
			lowest = u
		}
	}
	return lowest
}
