package gamedata

import (
	"errors"
	"math/rand"
)

// EnemyRegistry holds loaded enemy definitions and provides encounter
// composition utilities.
type EnemyRegistry struct {
	enemies     []EnemyDef
	totalWeight int
}

// NewEnemyRegistry creates a registry from loaded enemy definitions.
func NewEnemyRegistry(enemies []EnemyDef) *EnemyRegistry {
	totalWeight := 0
	for _, e := range enemies {
		totalWeight += e.SpawnWeight
	}
	return &EnemyRegistry{
		enemies:     enemies,
		totalWeight: totalWeight,
	}
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.json.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.json")
	}
	return NewEnemyRegistry(enemies), nil
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random enemy definition using weighted probability.
// Enemies with higher spawnWeight are more likely to be selected.
func (r *EnemyRegistry) SpawnRandom(rng *rand.Rand) *EnemyDef {
	if r.totalWeight <= 0 || len(r.enemies) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.enemies {
		cumulative += r.enemies[i].SpawnWeight
		if roll < cumulative {
			return &r.enemies[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.enemies[0]
}

// GetByID returns the enemy definition with the given ID, or nil if not found.
func (r *EnemyRegistry) GetByID(id string) *EnemyDef {
	for i := range r.enemies {
		if r.enemies[i].ID == id {
			return &r.enemies[i]
		}
	}
	return nil
}

// All returns all enemy definitions.
func (r *EnemyRegistry) All() []EnemyDef {
	return r.enemies
}

// Count returns the number of enemy types in the registry.
func (r *EnemyRegistry) Count() int {
	return len(r.enemies)
}

// =============================================================================
// AbilityRegistry
// =============================================================================

// AbilityRegistry holds loaded ability definitions and provides lookup utilities.
type AbilityRegistry struct {
	abilities map[string]*AbilityDef
	all       []AbilityDef
}

// NewAbilityRegistry creates a registry from loaded ability definitions.
func NewAbilityRegistry(abilities []AbilityDef) *AbilityRegistry {
	registry := &AbilityRegistry{
		abilities: make(map[string]*AbilityDef),
		all:       abilities,
	}
	for i := range abilities {
		registry.abilities[abilities[i].ID] = &abilities[i]
	}
	return registry
}

// LoadAbilityRegistry loads and creates a registry from the embedded abilities.json.
func LoadAbilityRegistry() (*AbilityRegistry, error) {
	abilities, err := LoadAbilities()
	if err != nil {
		return nil, err
	}
	if len(abilities) == 0 {
		return nil, errors.New("no abilities loaded from abilities.json")
	}
	return NewAbilityRegistry(abilities), nil
}

// MustLoadAbilityRegistry loads a registry, panicking on error.
func MustLoadAbilityRegistry() *AbilityRegistry {
	registry, err := LoadAbilityRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the ability definition with the given ID, or nil if not found.
func (r *AbilityRegistry) GetByID(id string) *AbilityDef {
	return r.abilities[id]
}

// GetMultiple returns ability definitions for a list of IDs.
// Missing IDs are silently skipped.
func (r *AbilityRegistry) GetMultiple(ids []string) []*AbilityDef {
	result := make([]*AbilityDef, 0, len(ids))
	for _, id := range ids {
		if ability := r.abilities[id]; ability != nil {
			result = append(result, ability)
		}
	}
	return result
}

// All returns all ability definitions.
func (r *AbilityRegistry) All() []AbilityDef {
	return r.all
}

// Count returns the number of abilities in the registry.
func (r *AbilityRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// HeroRegistry
// =============================================================================

// HeroRegistry holds loaded hero templates.
type HeroRegistry struct {
	heroes map[string]*HeroDef
	all    []HeroDef
}

// NewHeroRegistry creates a registry from loaded hero definitions.
func NewHeroRegistry(heroes []HeroDef) *HeroRegistry {
	registry := &HeroRegistry{
		heroes: make(map[string]*HeroDef),
		all:    heroes,
	}
	for i := range heroes {
		registry.heroes[heroes[i].ID] = &heroes[i]
	}
	return registry
}

// LoadHeroRegistry loads and creates a registry from the embedded heroes.json.
func LoadHeroRegistry() (*HeroRegistry, error) {
	heroes, err := LoadHeroes()
	if err != nil {
		return nil, err
	}
	if len(heroes) == 0 {
		return nil, errors.New("no heroes loaded from heroes.json")
	}
	return NewHeroRegistry(heroes), nil
}

// MustLoadHeroRegistry loads a registry, panicking on error.
func MustLoadHeroRegistry() *HeroRegistry {
	registry, err := LoadHeroRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the hero template with the given ID, or nil if not found.
func (r *HeroRegistry) GetByID(id string) *HeroDef {
	return r.heroes[id]
}

// All returns all hero templates.
func (r *HeroRegistry) All() []HeroDef {
	return r.all
}

// Count returns the number of hero templates in the registry.
func (r *HeroRegistry) Count() int {
	return len(r.all)
}

// =============================================================================
// ItemRegistry
// =============================================================================

// ItemRegistry holds the static item catalog.
type ItemRegistry struct {
	items map[string]*ItemDef
	all   []ItemDef
}

// NewItemRegistry creates a registry from loaded item definitions.
func NewItemRegistry(items []ItemDef) *ItemRegistry {
	registry := &ItemRegistry{
		items: make(map[string]*ItemDef),
		all:   items,
	}
	for i := range items {
		registry.items[items[i].ID] = &items[i]
	}
	return registry
}

// LoadItemRegistry loads and creates a registry from the embedded items.json.
func LoadItemRegistry() (*ItemRegistry, error) {
	items, err := LoadItems()
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, errors.New("no items loaded from items.json")
	}
	return NewItemRegistry(items), nil
}

// MustLoadItemRegistry loads a registry, panicking on error.
func MustLoadItemRegistry() *ItemRegistry {
	registry, err := LoadItemRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// GetByID returns the item definition with the given ID, or nil if not found.
func (r *ItemRegistry) GetByID(id string) *ItemDef {
	return r.items[id]
}

// GetByType returns every item of the given type, in catalog order.
func (r *ItemRegistry) GetByType(t ItemType) []*ItemDef {
	var result []*ItemDef
	for i := range r.all {
		if r.all[i].Type == t {
			result = append(result, &r.all[i])
		}
	}
	return result
}

// All returns all item definitions.
func (r *ItemRegistry) All() []ItemDef {
	return r.all
}

// Count returns the number of items in the catalog.
func (r *ItemRegistry) Count() int {
	return len(r.all)
}
