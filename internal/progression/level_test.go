package progression

import (
	"testing"

	"github.com/samdwyer/gridvale/internal/gamedata"
)

func TestLevelForXP(t *testing.T) {
	table := NewLevelTable(gamedata.MustLoadXPThresholds())

	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{60, 2},
		{119, 2},
		{120, 3},
		{1660, 10},
		{999999, 10},
	}
	for _, c := range cases {
		if got := table.LevelForXP(c.xp); got != c.want {
			t.Errorf("LevelForXP(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelForXPMonotonic(t *testing.T) {
	table := NewLevelTable(gamedata.MustLoadXPThresholds())

	prev := table.LevelForXP(0)
	if prev != 1 {
		t.Fatalf("LevelForXP(0) = %d, want 1", prev)
	}
	for xp := 1; xp <= 2000; xp++ {
		level := table.LevelForXP(xp)
		if level < prev {
			t.Fatalf("Level decreased from %d to %d at %d XP", prev, level, xp)
		}
		prev = level
	}
}

func TestThresholdForLevel(t *testing.T) {
	table := NewLevelTable([]int{0, 50, 120})

	if got := table.ThresholdForLevel(2); got != 50 {
		t.Errorf("ThresholdForLevel(2) = %d, want 50", got)
	}
	// Out-of-range levels clamp to the table bounds
	if got := table.ThresholdForLevel(0); got != 0 {
		t.Errorf("ThresholdForLevel(0) = %d, want 0", got)
	}
	if got := table.ThresholdForLevel(99); got != 120 {
		t.Errorf("ThresholdForLevel(99) = %d, want the last threshold 120", got)
	}
	if got := table.MaxLevel(); got != 3 {
		t.Errorf("MaxLevel = %d, want 3", got)
	}
}
