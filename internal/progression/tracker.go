package progression

import (
	"log/slog"
	"sort"

	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/save"
)

// XP award tuning. Damage XP is 1:1 with raw damage; resource XP pays double
// the amount spent; item use pays a flat rate; kill XP comes from the enemy
// template. Heroes below the party's highest projected level earn 1.5x.
const (
	resourceXPMultiplier = 2
	itemUseXP            = 5
	catchUpMultiplier    = 1.5
)

// BattleReward summarizes one hero's take from a finalized battle.
type BattleReward struct {
	HeroID        save.HeroID
	XPEarned      int
	TotalXP       int
	PreviousLevel int
	NewLevel      int
	LeveledUp     bool
}

// Tracker accumulates XP over one battle. It owns a snapshot of the hero
// progression states taken at construction; callers commit the states
// returned by FinalizeBattle, so an abandoned battle changes nothing.
type Tracker struct {
	table     LevelTable
	heroes    *gamedata.HeroRegistry
	logger    *slog.Logger
	start     map[save.HeroID]*save.HeroProgressionState
	earned    map[save.HeroID]int
	finalized bool
}

// NewTracker snapshots the given states and starts a fresh battle ledger.
func NewTracker(states map[save.HeroID]*save.HeroProgressionState, table LevelTable, heroes *gamedata.HeroRegistry, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	snapshot := make(map[save.HeroID]*save.HeroProgressionState, len(states))
	for id, s := range states {
		copied := *s
		snapshot[id] = &copied
	}
	return &Tracker{
		table:  table,
		heroes: heroes,
		logger: logger,
		start:  snapshot,
		earned: make(map[save.HeroID]int),
	}
}

// AwardDamageXP credits a hero for raw damage dealt with a zero-cost ability.
// Any hit is worth at least 1 XP. Returns the amount actually credited.
func (t *Tracker) AwardDamageXP(id save.HeroID, damage int) int {
	if damage < 1 {
		damage = 1
	}
	return t.award(id, damage)
}

// AwardResourceXP credits a hero for mana/ki spent on an ability, regardless
// of what the ability went on to do.
func (t *Tracker) AwardResourceXP(id save.HeroID, spent int) int {
	if spent <= 0 {
		return 0
	}
	return t.award(id, spent*resourceXPMultiplier)
}

// AwardKillXP credits a hero with a defeated enemy's XP value.
func (t *Tracker) AwardKillXP(id save.HeroID, xp int) int {
	if xp <= 0 {
		return 0
	}
	return t.award(id, xp)
}

// AwardItemXP credits a hero for using a consumable in battle.
func (t *Tracker) AwardItemXP(id save.HeroID) int {
	return t.award(id, itemUseXP)
}

// Earned returns the XP a hero has accumulated so far this battle.
func (t *Tracker) Earned(id save.HeroID) int {
	return t.earned[id]
}

// award applies the catch-up multiplier and records the grant. Awards to
// unknown hero ids are dropped with a warning; mid-battle XP must never
// crash a battle.
func (t *Tracker) award(id save.HeroID, base int) int {
	if t.finalized {
		panic("progression: award after battle finalized")
	}
	if _, ok := t.start[id]; !ok {
		t.logger.Warn("dropping XP award for unknown hero", "hero", string(id), "amount", base)
		return 0
	}

	amount := base
	if t.behindParty(id) {
		amount = int(float64(base) * catchUpMultiplier)
	}
	t.earned[id] += amount
	return amount
}

// behindParty reports whether the hero's projected level (committed XP plus
// this battle's accrual) trails the party's highest projected level. The
// distribution is recomputed on every award, so a hero who catches up
// mid-battle stops receiving the bonus immediately.
func (t *Tracker) behindParty(id save.HeroID) bool {
	highest := 0
	for heroID, s := range t.start {
		level := t.table.LevelForXP(s.TotalXP + t.earned[heroID])
		if level > highest {
			highest = level
		}
	}
	own := t.table.LevelForXP(t.start[id].TotalXP + t.earned[id])
	return own < highest
}

// FinalizeBattle commits the accrued XP: it recomputes each hero's level from
// the new total and returns rewards in stable hero-id order alongside the new
// progression states for the caller to persist. Leveled-up heroes are fully
// healed to their new maxima; equipment and permanent bonuses are untouched.
// Finalizing the same battle twice is a programmer error.
func (t *Tracker) FinalizeBattle() ([]BattleReward, map[save.HeroID]*save.HeroProgressionState) {
	if t.finalized {
		panic("progression: battle finalized twice")
	}
	t.finalized = true

	ids := make([]save.HeroID, 0, len(t.start))
	for id := range t.start {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	rewards := make([]BattleReward, 0, len(ids))
	states := make(map[save.HeroID]*save.HeroProgressionState, len(ids))

	for _, id := range ids {
		prev := t.start[id]
		next := *prev
		next.TotalXP = prev.TotalXP + t.earned[id]
		next.Level = t.table.LevelForXP(next.TotalXP)

		leveledUp := next.Level > prev.Level
		if leveledUp {
			if def := t.heroes.GetByID(string(id)); def != nil {
				next.CurrentHP = def.MaxHPForLevel(next.Level)
				next.CurrentResource = def.MaxResourceForLevel(next.Level)
			}
		}

		states[id] = &next
		rewards = append(rewards, BattleReward{
			HeroID:        id,
			XPEarned:      t.earned[id],
			TotalXP:       next.TotalXP,
			PreviousLevel: prev.Level,
			NewLevel:      next.Level,
			LeveledUp:     leveledUp,
		})
	}
	return rewards, states
}
