// Package game provides the shell loop gluing exploration, chests, battles,
// and persistence together. All engine rules live in the packages it calls;
// the shell only owns input and the one-actor-at-a-time discipline.
package game

// State represents the current game state.
type State int

const (
	// StateExplore is the default exploration mode where the party moves as one.
	StateExplore State = iota
	// StateBattle is the tactical mode where units act individually.
	StateBattle
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateExplore:
		return "explore"
	case StateBattle:
		return "battle"
	default:
		return "unknown"
	}
}
