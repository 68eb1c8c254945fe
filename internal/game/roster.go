package game

import (
	"fmt"
	"sort"

	"github.com/samdwyer/gridvale/internal/save"
)

// activeHero returns the progression state of the hero the roster keys act
// on, or nil if the save somehow carries no such hero.
func (g *Game) activeHero() *save.HeroProgressionState {
	return g.data.Heroes[g.data.ActiveHero]
}

func (g *Game) heroName(id save.HeroID) string {
	if def := g.heroes.GetByID(string(id)); def != nil {
		return def.Name
	}
	return string(id)
}

// cycleActiveHero advances the active hero through the roster in stable id
// order, wrapping around.
func (g *Game) cycleActiveHero() {
	ids := make([]save.HeroID, 0, len(g.data.Heroes))
	for id := range g.data.Heroes {
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	next := ids[0]
	for i, id := range ids {
		if id == g.data.ActiveHero {
			next = ids[(i+1)%len(ids)]
			break
		}
	}
	g.data.ActiveHero = next
	g.message = fmt.Sprintf("%s leads the party.", g.heroName(next))
}

// equipNext puts the oldest unequipped piece on the active hero. Whatever the
// hero wore before goes to the back of the pile, so pressing the key
// repeatedly cycles through all owned equipment.
func (g *Game) equipNext() {
	hero := g.activeHero()
	if hero == nil {
		return
	}
	if len(g.data.Inventory.Unequipped) == 0 {
		g.message = "No spare equipment."
		return
	}

	itemID := g.data.Inventory.Unequipped[0]
	if !g.loot.Equip(hero, itemID) {
		g.message = "That cannot be equipped."
		return
	}
	def := g.items.GetByID(itemID)
	g.message = fmt.Sprintf("%s equips %s.", g.heroName(g.data.ActiveHero), def.Name)
}

// unequipActive returns the active hero's worn equipment to the pile.
func (g *Game) unequipActive() {
	hero := g.activeHero()
	if hero == nil || !g.loot.Unequip(hero) {
		g.message = "Nothing to remove."
		return
	}
	g.message = fmt.Sprintf("%s stows their gear.", g.heroName(g.data.ActiveHero))
}

// spendBonusToken burns one banked upgrade token on the active hero.
func (g *Game) spendBonusToken() {
	hero := g.activeHero()
	if hero == nil || !g.loot.SpendBonusToken(hero) {
		g.message = "No bonus tokens."
		return
	}
	g.message = fmt.Sprintf("%s grows stronger: +1 damage, %d tokens left.",
		g.heroName(g.data.ActiveHero), g.data.Inventory.BonusTokens)
}
