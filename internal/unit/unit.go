// Package unit provides the combatant model: stats, turn state, status
// effects, and the only legal HP mutation paths.
package unit

import (
	"github.com/samdwyer/gridvale/internal/gamedata"
)

// Team identifies which side of a battle a unit fights on.
type Team string

const (
	TeamHero  Team = "hero"
	TeamEnemy Team = "enemy"
)

// Facing is the direction a unit's sprite points. It is owned by the
// presentation layer; the engine stores it but never reads it for game logic.
type Facing int

const (
	FacingDown Facing = iota
	FacingUp
	FacingLeft
	FacingRight
)

// Config carries everything needed to construct a Unit. Construction is the
// only place initial HP can be set; afterwards ApplyDamage and ApplyHealing
// are the sole mutation paths.
type Config struct {
	ID         string
	TemplateID string
	Team       Team
	Name       string

	MaxHP int
	HP    int // Clamped to [0, MaxHP]; 0 constructs the unit unconscious

	Resource        gamedata.ResourceType
	MaxResource     int
	CurrentResource int

	Level      int // Defaults to 1
	Attack     int
	Defense    int
	Magic      int
	Resilience int
	Speed      int

	// DamageBonus is the permanent bonus folded in from hero progression
	// (rune upgrades, equipment). Status effects stack on top of it.
	DamageBonus int

	Special string
}

// Unit represents one combatant for the duration of a single battle.
type Unit struct {
	ID         string
	TemplateID string
	Team       Team
	Name       string

	// Grid position and facing, owned by the battle/rendering layer.
	X, Y   int
	Facing Facing

	MaxHP int
	hp    int

	Resource    gamedata.ResourceType
	MaxResource int
	resource    int

	Level       int
	Attack      int
	Defense     int
	Magic       int
	Resilience  int
	Speed       int
	DamageBonus int

	Special string

	HasMoved         bool
	HasActed         bool
	ActionsRemaining int

	unconscious   bool
	statusEffects []StatusEffect
}

// New constructs a Unit from a Config, clamping vitals into range.
func New(cfg Config) *Unit {
	if cfg.Level < 1 {
		cfg.Level = 1
	}

	u := &Unit{
		ID:          cfg.ID,
		TemplateID:  cfg.TemplateID,
		Team:        cfg.Team,
		Name:        cfg.Name,
		MaxHP:       cfg.MaxHP,
		Resource:    cfg.Resource,
		MaxResource: cfg.MaxResource,
		Level:       cfg.Level,
		Attack:      cfg.Attack,
		Defense:     cfg.Defense,
		Magic:       cfg.Magic,
		Resilience:  cfg.Resilience,
		Speed:       cfg.Speed,
		DamageBonus: cfg.DamageBonus,
		Special:     cfg.Special,
	}

	u.hp = clamp(cfg.HP, 0, cfg.MaxHP)
	if cfg.Resource != gamedata.ResourceNone {
		u.resource = clamp(cfg.CurrentResource, 0, cfg.MaxResource)
	}
	if u.hp == 0 {
		u.unconscious = true
		u.statusEffects = append(u.statusEffects, StatusEffect{
			Type:     gamedata.StatusUnconscious,
			Duration: DurationPermanent,
		})
	}
	return u
}

// HP returns the unit's current hit points.
func (u *Unit) HP() int { return u.hp }

// CurrentResource returns the unit's current mana/ki, or 0 for resourceless units.
func (u *Unit) CurrentResource() int { return u.resource }

// Unconscious returns true if the unit has dropped to 0 HP and has not been revived.
func (u *Unit) Unconscious() bool { return u.unconscious }

// SpendResource deducts from the unit's resource pool. Returns false if the
// unit lacks the pool type or the amount.
func (u *Unit) SpendResource(kind gamedata.ResourceType, amount int) bool {
	if kind == gamedata.ResourceNone || amount <= 0 {
		return true
	}
	if u.Resource != kind || u.resource < amount {
		return false
	}
	u.resource -= amount
	return true
}

// RestoreResource refills the pool, clamped to the maximum. Returns the
// amount actually restored.
func (u *Unit) RestoreResource(amount int) int {
	if amount <= 0 || u.Resource == gamedata.ResourceNone {
		return 0
	}
	actual := amount
	if u.resource+actual > u.MaxResource {
		actual = u.MaxResource - u.resource
	}
	u.resource += actual
	return actual
}

// ResetTurnState clears movement/action flags and grants this turn's actions.
// Units with the bonus-action capability start with 2 actions; moving forfeits
// the second one. Callers must invoke this exactly once per unit per turn:
// calling it again mid-turn would illegally restore spent actions.
func (u *Unit) ResetTurnState() {
	u.HasMoved = false
	u.HasActed = false
	if u.unconscious {
		u.ActionsRemaining = 0
		return
	}
	if u.Special == gamedata.SpecialBonusAction {
		u.ActionsRemaining = 2
	} else {
		u.ActionsRemaining = 1
	}
}

// CanMove returns true if the unit may still move this turn.
func (u *Unit) CanMove() bool {
	if u.unconscious {
		return false
	}
	return !u.HasMoved
}

// CanAct returns true if the unit may still take an action this turn.
func (u *Unit) CanAct() bool {
	if u.unconscious {
		return false
	}
	return !u.HasActed || u.ActionsRemaining > 0
}

// MarkMoved records that the unit moved. Moving forfeits the stationary bonus
// action even if it had not yet been spent.
func (u *Unit) MarkMoved() {
	u.HasMoved = true
	if u.Special == gamedata.SpecialBonusAction && u.ActionsRemaining > 1 {
		u.ActionsRemaining = 1
	}
}

// MarkActed spends one action, setting HasActed once the pool is exhausted.
func (u *Unit) MarkActed() {
	u.ActionsRemaining--
	if u.ActionsRemaining <= 0 {
		u.ActionsRemaining = 0
		u.HasActed = true
	}
}

// OnTeam returns true if the unit fights for the given team.
func (u *Unit) OnTeam(team Team) bool {
	return u.Team == team
}

// LivingUnits filters units down to the given team's conscious members.
func LivingUnits(units []*Unit, team Team) []*Unit {
	var living []*Unit
	for _, u := range units {
		if u.Team == team && !u.unconscious {
			living = append(living, u)
		}
	}
	return living
}

// TeamDefeated returns true if every unit on the team is unconscious. An
// empty team counts as defeated.
func TeamDefeated(units []*Unit, team Team) bool {
	for _, u := range units {
		if u.Team == team && !u.unconscious {
			return false
		}
	}
	return true
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
