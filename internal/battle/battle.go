// Package battle drives one encounter: it builds units from templates and
// persisted progression, runs the round loop, routes ability use through the
// resolver, and hands the outcome to the progression tracker.
package battle

import (
	"log/slog"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/gridvale/internal/combat"
	"github.com/samdwyer/gridvale/internal/gamedata"
	"github.com/samdwyer/gridvale/internal/progression"
	"github.com/samdwyer/gridvale/internal/save"
	"github.com/samdwyer/gridvale/internal/telemetry"
	"github.com/samdwyer/gridvale/internal/unit"
)

// Config carries everything a battle needs. Registries and tables are passed
// in explicitly; the battle holds no global state.
type Config struct {
	HeroStates map[save.HeroID]*save.HeroProgressionState
	EnemyDefs  []*gamedata.EnemyDef

	Heroes    *gamedata.HeroRegistry
	Abilities *gamedata.AbilityRegistry
	Table     progression.LevelTable

	// EquipmentBonuses reports a hero's worn-equipment contribution; nil
	// means no equipment system is wired in (tests).
	EquipmentBonuses func(*save.HeroProgressionState) (damage, defense int)

	Rng    *rand.Rand
	Tracer trace.Tracer
	Logger *slog.Logger
}

// Battle is one encounter in progress.
type Battle struct {
	Units []*unit.Unit
	Round int

	resolver  *combat.Resolver
	tracker   *progression.Tracker
	abilities *gamedata.AbilityRegistry
	tracer    trace.Tracer
	logger    *slog.Logger

	// killXP maps enemy instance ids to their template's kill bonus.
	killXP map[string]int
	// abilityIDs maps unit instance ids to their template's ability list.
	abilityIDs map[string][]string
	finished   bool
}

// New builds the battle's units. Hero units come from their template plus
// persisted progression: level-derived maxima, persisted HP clamped into
// range, and permanent/equipment bonuses folded in. Resource pools refill at
// battle start. Enemy units get uuid-disambiguated instance ids so two
// goblins never collide.
func New(cfg Config) *Battle {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = telemetry.NoopTracer()
	}

	b := &Battle{
		resolver:   combat.NewResolver(cfg.Abilities),
		tracker:    progression.NewTracker(cfg.HeroStates, cfg.Table, cfg.Heroes, logger),
		abilities:  cfg.Abilities,
		tracer:     tracer,
		logger:     logger,
		killXP:     make(map[string]int),
		abilityIDs: make(map[string][]string),
	}

	for id, state := range cfg.HeroStates {
		def := cfg.Heroes.GetByID(string(id))
		if def == nil {
			logger.Warn("skipping hero with no template", "hero", string(id))
			continue
		}

		maxHP := def.MaxHPForLevel(state.Level)
		hp := state.CurrentHP
		if hp <= 0 || hp > maxHP {
			// Fresh saves and post-knockout heroes enter at full health
			hp = maxHP
		}

		damageBonus := state.DamageBonus
		defense := def.Defense
		if cfg.EquipmentBonuses != nil {
			d, df := cfg.EquipmentBonuses(state)
			damageBonus += d
			defense += df
		}

		maxResource := def.MaxResourceForLevel(state.Level)
		b.abilityIDs[string(id)] = def.Abilities
		b.Units = append(b.Units, unit.New(unit.Config{
			ID:              string(id),
			TemplateID:      def.ID,
			Team:            unit.TeamHero,
			Name:            def.Name,
			MaxHP:           maxHP,
			HP:              hp,
			Resource:        def.Resource,
			MaxResource:     maxResource,
			CurrentResource: maxResource,
			Level:           state.Level,
			Attack:          def.Attack,
			Defense:         defense,
			Magic:           def.Magic,
			Resilience:      def.Resilience,
			Speed:           def.Speed,
			DamageBonus:     damageBonus,
			Special:         def.Special,
		}))
	}

	for _, def := range cfg.EnemyDefs {
		instanceID := def.ID + "-" + strings.Split(uuid.NewString(), "-")[0]
		b.killXP[instanceID] = def.XP
		b.abilityIDs[instanceID] = def.Abilities
		b.Units = append(b.Units, unit.New(unit.Config{
			ID:         instanceID,
			TemplateID: def.ID,
			Team:       unit.TeamEnemy,
			Name:       def.Name,
			MaxHP:      def.HP,
			HP:         def.HP,
			Attack:     def.Attack,
			Defense:    def.Defense,
			Magic:      def.Magic,
			Resilience: def.Resilience,
			Speed:      def.Speed,
		}))
	}

	return b
}

// ComposeEncounter draws count enemies from the registry's weighted spawn
// table.
func ComposeEncounter(enemies *gamedata.EnemyRegistry, rng *rand.Rand, count int) []*gamedata.EnemyDef {
	defs := make([]*gamedata.EnemyDef, 0, count)
	for i := 0; i < count; i++ {
		if def := enemies.SpawnRandom(rng); def != nil {
			defs = append(defs, def)
		}
	}
	return defs
}

// UnitByID looks up a unit by instance id.
func (b *Battle) UnitByID(id string) *unit.Unit {
	for _, u := range b.Units {
		if u.ID == id {
			return u
		}
	}
	return nil
}

// HeroUnits returns the hero-side units in construction order.
func (b *Battle) HeroUnits() []*unit.Unit {
	var heroes []*unit.Unit
	for _, u := range b.Units {
		if u.OnTeam(unit.TeamHero) {
			heroes = append(heroes, u)
		}
	}
	return heroes
}

// EnemyUnits returns the enemy-side units in construction order.
func (b *Battle) EnemyUnits() []*unit.Unit {
	var enemies []*unit.Unit
	for _, u := range b.Units {
		if u.OnTeam(unit.TeamEnemy) {
			enemies = append(enemies, u)
		}
	}
	return enemies
}

// Victory reports whether every enemy is down.
func (b *Battle) Victory() bool {
	return unit.TeamDefeated(b.Units, unit.TeamEnemy)
}

// Defeat reports whether every hero is down.
func (b *Battle) Defeat() bool {
	return unit.TeamDefeated(b.Units, unit.TeamHero)
}

// Over reports whether either side has been wiped out.
func (b *Battle) Over() bool {
	return b.Victory() || b.Defeat()
}
