package gamedata

// Special capability tags read by turn-reset logic.
const (
	// SpecialBonusAction grants a second action on any turn where the unit
	// has not moved. Moving forfeits the bonus action, even retroactively.
	SpecialBonusAction = "bonus_action_if_stationary"
)

// HeroDef defines a playable hero template loaded from JSON.
type HeroDef struct {
	ID         string       `json:"id"`
	Name       string       `json:"name"`
	Glyph      string       `json:"glyph"`
	Color      string       `json:"color"`
	Attack     int          `json:"attack"`
	Defense    int          `json:"defense"`
	Magic      int          `json:"magic"`
	Resilience int          `json:"resilience"`
	Speed      int          `json:"speed"`
	Resource   ResourceType `json:"resource,omitempty"` // Empty for resourceless heroes
	Abilities  []string     `json:"abilities"`
	Special    string       `json:"special,omitempty"`

	// Per-level maxima, indexed by level-1. Levels beyond the table clamp
	// to the last entry.
	HPByLevel       []int `json:"hpByLevel"`
	ResourceByLevel []int `json:"resourceByLevel,omitempty"`
}

// GlyphRune returns the glyph as a rune for rendering.
func (h *HeroDef) GlyphRune() rune {
	if len(h.Glyph) == 0 {
		return '?'
	}
	return rune(h.Glyph[0])
}

// MaxHPForLevel returns the hero's maximum HP at the given level, clamped to
// the table bounds.
func (h *HeroDef) MaxHPForLevel(level int) int {
	return tableLookup(h.HPByLevel, level)
}

// MaxResourceForLevel returns the hero's maximum mana/ki at the given level,
// or 0 for resourceless heroes.
func (h *HeroDef) MaxResourceForLevel(level int) int {
	if h.Resource == ResourceNone {
		return 0
	}
	return tableLookup(h.ResourceByLevel, level)
}

// tableLookup indexes a per-level table with clamping at both ends.
func tableLookup(table []int, level int) int {
	if len(table) == 0 {
		return 0
	}
	if level < 1 {
		level = 1
	}
	if level > len(table) {
		level = len(table)
	}
	return table[level-1]
}

// HeroesFile represents the structure of heroes.json.
type HeroesFile struct {
	Heroes []HeroDef `json:"heroes"`
}

// LoadHeroes loads hero definitions from the embedded heroes.json file.
func LoadHeroes() ([]HeroDef, error) {
	file, err := Load[HeroesFile]("heroes.json")
	if err != nil {
		return nil, err
	}
	return file.Heroes, nil
}
