// Package progression maps XP to levels and accumulates per-battle XP awards.
package progression

// LevelTable maps cumulative XP to levels. Thresholds are ascending; the
// first entry is 0, so any XP total maps to at least level 1.
type LevelTable struct {
	thresholds []int
}

// NewLevelTable builds a table from ascending cumulative thresholds.
func NewLevelTable(thresholds []int) LevelTable {
	return LevelTable{thresholds: thresholds}
}

// LevelForXP returns the level a cumulative XP total corresponds to. Level is
// a pure function of total XP: the highest level whose threshold has been met.
func (t LevelTable) LevelForXP(totalXP int) int {
	level := 1
	for i, threshold := range t.thresholds {
		if totalXP >= threshold {
			level = i + 1
		} else {
			break
		}
	}
	return level
}

// ThresholdForLevel returns the cumulative XP required to reach a level,
// clamped to the table bounds.
func (t LevelTable) ThresholdForLevel(level int) int {
	if len(t.thresholds) == 0 {
		return 0
	}
	if level < 1 {
		level = 1
	}
	if level > len(t.thresholds) {
		level = len(t.thresholds)
	}
	return t.thresholds[level-1]
}

// MaxLevel returns the highest level the table defines.
func (t LevelTable) MaxLevel() int {
	return len(t.thresholds)
}
