package domain

// Difficulty labels preset carve depths.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// Removed is the number of cells blanked when carving a puzzle at this
// difficulty. Medium matches the default removal count of 40.
func (d Difficulty) Removed() int {
	switch d {
	case Easy:
		return 30
	case Hard:
		return 48
	case Expert:
		return 56
	default:
		return 40 // Medium
	}
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty, defaulting to Medium.
func ParseDifficulty(s string) Difficulty {
	switch s {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}
