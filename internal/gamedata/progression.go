package gamedata

import "errors"

// ProgressionFile represents the structure of progression.json.
type ProgressionFile struct {
	// XPThresholds[i] is the cumulative XP required to reach level i+1.
	// The first entry must be 0 (everyone starts at level 1) and entries
	// must be strictly ascending.
	XPThresholds []int `json:"xpThresholds"`
}

// LoadXPThresholds loads the level threshold table from the embedded
// progression.json file.
func LoadXPThresholds() ([]int, error) {
	file, err := Load[ProgressionFile]("progression.json")
	if err != nil {
		return nil, err
	}
	if len(file.XPThresholds) == 0 {
		return nil, errors.New("no XP thresholds loaded from progression.json")
	}
	return file.XPThresholds, nil
}

// MustLoadXPThresholds loads the threshold table, panicking on error.
func MustLoadXPThresholds() []int {
	thresholds, err := LoadXPThresholds()
	if err != nil {
		panic(err)
	}
	return thresholds
}
