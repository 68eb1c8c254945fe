package gamedata

// EffectType represents what an ability does.
type EffectType string

const (
	EffectDamage EffectType = "damage"
	EffectHeal   EffectType = "heal"
	EffectBuff   EffectType = "buff"
	EffectDebuff EffectType = "debuff"
)

// TargetType represents who an ability can target.
type TargetType string

const (
	TargetSelf        TargetType = "self"
	TargetSingleEnemy TargetType = "single_enemy"
	TargetAllEnemies  TargetType = "all_enemies"
	TargetSingleAlly  TargetType = "single_ally"
	TargetAllAllies   TargetType = "all_allies"
)

// DamageType represents how damage is calculated.
type DamageType string

const (
	DamagePhysical DamageType = "physical"
	DamageMagical  DamageType = "magical"
	DamageTrue     DamageType = "true"
)

// ResourceType identifies the resource pool an ability draws from. A unit has
// at most one pool; resourceless units can only use zero-cost abilities.
type ResourceType string

const (
	ResourceNone ResourceType = ""
	ResourceMana ResourceType = "mana"
	ResourceKi   ResourceType = "ki"
)

// AbilityDef defines an ability loaded from JSON.
//
// Damage calculation:
//
//	Physical: basePower + attacker effective attack + damage bonus - target effective defense (min 1)
//	Magical:  basePower + attacker magic - target effective resilience (min 1)
//	True:     basePower (unmitigated)
//	Healing:  basePower + caster magic
type AbilityDef struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description"`
	EffectType     EffectType       `json:"effectType"`
	TargetType     TargetType       `json:"targetType"`
	DamageType     DamageType       `json:"damageType,omitempty"`
	BasePower      int              `json:"basePower"`
	Cost           int              `json:"cost"`
	CostType       ResourceType     `json:"costType,omitempty"`
	Range          int              `json:"range"`
	LevelGate      int              `json:"levelGate,omitempty"` // Minimum level to use; 0 means always available
	StatusEffect   StatusEffectType `json:"statusEffect,omitempty"`
	StatusDuration int              `json:"statusDuration,omitempty"`
}

// NeedsTarget returns true if the ability requires target selection.
func (a *AbilityDef) NeedsTarget() bool {
	return a.TargetType == TargetSingleEnemy || a.TargetType == TargetSingleAlly
}

// IsOffensive returns true if the ability targets enemies.
func (a *AbilityDef) IsOffensive() bool {
	return a.TargetType == TargetSingleEnemy || a.TargetType == TargetAllEnemies
}

// IsFree returns true if the ability spends no resource. Free abilities earn
// damage-based XP; costed abilities earn resource-based XP instead.
func (a *AbilityDef) IsFree() bool {
	return a.Cost <= 0
}

// AbilitiesFile represents the structure of abilities.json.
type AbilitiesFile struct {
	Abilities []AbilityDef `json:"abilities"`
}

// LoadAbilities loads ability definitions from the embedded abilities.json file.
func LoadAbilities() ([]AbilityDef, error) {
	file, err := Load[AbilitiesFile]("abilities.json")
	if err != nil {
		return nil, err
	}
	return file.Abilities, nil
}
