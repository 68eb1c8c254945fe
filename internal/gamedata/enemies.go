package gamedata

import "github.com/gdamore/tcell/v2"

// EnemyDef defines an enemy template loaded from JSON. Live enemies in a
// battle get a disambiguated instance id; this id is the species id.
type EnemyDef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Glyph       string   `json:"glyph"`
	Color       string   `json:"color"`
	HP          int      `json:"hp"`
	Attack      int      `json:"attack"`
	Defense     int      `json:"defense"`
	Magic       int      `json:"magic"`
	Resilience  int      `json:"resilience"`
	Speed       int      `json:"speed"`
	Abilities   []string `json:"abilities"`
	SpawnWeight int      `json:"spawnWeight"` // Relative encounter frequency (higher = more common)
	XP          int      `json:"xp"`          // Flat kill-bonus XP awarded to the killer
}

// GlyphRune returns the glyph as a rune for rendering.
func (e *EnemyDef) GlyphRune() rune {
	if len(e.Glyph) == 0 {
		return '?'
	}
	return rune(e.Glyph[0])
}

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(e.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
