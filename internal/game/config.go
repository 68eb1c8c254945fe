package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. A seed of 0 means time-based.
	Seed int64
	// SavePath is the SQLite save database path.
	SavePath string
	// SaveSlot selects which slot to load and write.
	SaveSlot int
}
