package world

import "strings"

// Chest is a lootable chest placed on the map. The ID keys the save file's
// chest table, so it must be stable across sessions.
type Chest struct {
	ID   string
	X, Y int
}

// Map is the static exploration map. It is parsed from a handcrafted layout
// rather than generated, so chest ids and room positions never change
// between runs.
type Map struct {
	ID     string
	Width  int
	Height int
	Rooms  []Room

	tiles  [][]Tile
	chests []Chest
}

// layout is the keep of Gridvale. '#' walls, '.' floor, letters mark chests.
var layout = strings.TrimPrefix(`
########################################
#........#.........#...................#
#........#.........#......a............#
#........+.........#...................#
#........#.........+...................#
####+#####....b....#############+#######
#........#.........#...................#
#........#.........#...................#
#...c....##########+#........d.........#
#........#.........#...................#
#........+.........#...................#
########################################
`, "\n")

// chestIDs maps layout letters to stable chest ids.
var chestIDs = map[rune]string{
	'a': "chest_gallery",
	'b': "chest_great_hall",
	'c': "chest_cellar",
	'd': "chest_armory",
}

// NewMap parses the built-in layout.
func NewMap() *Map {
	lines := strings.Split(strings.TrimRight(layout, "\n"), "\n")
	m := &Map{
		ID:     "gridvale_keep",
		Height: len(lines),
		Width:  len(lines[0]),
	}

	m.tiles = make([][]Tile, m.Height)
	for y, line := range lines {
		m.tiles[y] = make([]Tile, m.Width)
		for x, ch := range line {
			switch {
			case ch == '#':
				m.tiles[y][x] = TileWall
			case ch == '.' || ch == '+':
				// '+' marks doorways; they carve like floor
				m.tiles[y][x] = TileFloor
			default:
				if id, ok := chestIDs[ch]; ok {
					m.tiles[y][x] = TileChest
					m.chests = append(m.chests, Chest{ID: id, X: x, Y: y})
				} else {
					m.tiles[y][x] = TileFloor
				}
			}
		}
	}

	m.Rooms = []Room{
		{X: 1, Y: 1, Width: 8, Height: 4},   // west wing
		{X: 10, Y: 1, Width: 9, Height: 4},  // great hall, north half
		{X: 20, Y: 1, Width: 19, Height: 4}, // gallery
		{X: 1, Y: 6, Width: 8, Height: 5},   // cellar
		{X: 10, Y: 6, Width: 9, Height: 5},  // great hall, south half
		{X: 20, Y: 6, Width: 19, Height: 5}, // armory
	}
	return m
}

// GetTile returns the tile at the given position; out of bounds reads as wall.
func (m *Map) GetTile(x, y int) Tile {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return TileWall
	}
	return m.tiles[y][x]
}

// IsPassable returns true if the position can be walked on.
func (m *Map) IsPassable(x, y int) bool {
	return m.GetTile(x, y).IsPassable()
}

// ChestAt returns the chest at the given position, if any.
func (m *Map) ChestAt(x, y int) (Chest, bool) {
	for _, c := range m.chests {
		if c.X == x && c.Y == y {
			return c, true
		}
	}
	return Chest{}, false
}

// Chests returns every chest on the map.
func (m *Map) Chests() []Chest {
	return m.chests
}

// StartPosition returns where the party enters the map.
func (m *Map) StartPosition() (int, int) {
	return m.Rooms[0].Center()
}
