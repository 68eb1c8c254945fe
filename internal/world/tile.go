// Package world provides the exploration map: tiles, rooms, and chest
// placement. The map is static; all combat happens in abstract battle space.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
	// TileChest represents a lootable chest. Passable; stepping on it
	// triggers chest interaction.
	TileChest Tile = '='
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor || t == TileChest
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}
