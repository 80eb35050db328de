package engine

import (
	"fmt"
	"strings"
)

// ParseDifficulty parses user input to a Difficulty.
// Supported: easy, medium, hard (plus e/m/h and med).
// Empty input returns DefaultDifficulty.
func ParseDifficulty(input string) (Difficulty, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "":
		return DefaultDifficulty, nil
	case "easy", "e":
		return DifficultyEasy, nil
	case "medium", "med", "m":
		return DifficultyMedium, nil
	case "hard", "h":
		return DifficultyHard, nil
	default:
		return "", ValidationError{Field: "difficulty", Reason: fmt.Sprintf("%q is not one of easy, medium, hard", input)}
	}
}

// parseStoredDifficulty never fails: unknown stored values count as easy.
func parseStoredDifficulty(s string) Difficulty {
	d := Difficulty(strings.TrimSpace(strings.ToLower(s)))
	if d.IsValid() {
		return d
	}
	return DefaultDifficulty
}
