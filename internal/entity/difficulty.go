package entity

import "strings"

// Difficulty selects how much the computer looks ahead before moving.
type Difficulty int

const (
	// Easy plays a random empty cell.
	Easy Difficulty = iota
	// Medium takes an immediate win, otherwise plays like Easy.
	Medium
	// Hard takes an immediate win, then blocks the human, otherwise plays like Easy.
	Hard
)

// difficultyNames maps lower-cased names to tiers. The Spanish names are
// still accepted from older saved settings.
var difficultyNames = map[string]Difficulty{
	"easy":    Easy,
	"medium":  Medium,
	"hard":    Hard,
	"fácil":   Easy,
	"facil":   Easy,
	"medio":   Medium,
	"difícil": Hard,
	"dificil": Hard,
}

// ParseDifficulty - returns the tier named by s, ignoring case. Unknown names map to Easy.
func ParseDifficulty(s string) Difficulty {
	if d, ok := difficultyNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return d
	}

	return Easy
}

func (that Difficulty) String() string {
	switch that {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "easy"
	}
}
