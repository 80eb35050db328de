package engine

import (
	"fmt"
	"math"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/storage"
)

// Rules holds every tunable number of the XP model.
type Rules struct {
	XPEasy   int `yaml:"xp_easy"`
	XPMedium int `yaml:"xp_medium"`
	XPHard   int `yaml:"xp_hard"`

	// LevelCap is the XP needed per level.
	LevelCap int `yaml:"level_cap"`

	DailyBonus    int `yaml:"daily_bonus"`
	StreakPenalty int `yaml:"streak_penalty"`

	GoalBonusPct       float64 `yaml:"goal_bonus_pct"`
	GoalLatePenaltyPct float64 `yaml:"goal_late_penalty_pct"`

	MissedEasy   int `yaml:"missed_easy"`
	MissedMedium int `yaml:"missed_medium"`
	MissedHard   int `yaml:"missed_hard"`
}

func DefaultRules() Rules {
	return Rules{
		XPEasy:             10,
		XPMedium:           20,
		XPHard:             40,
		LevelCap:           100,
		DailyBonus:         5,
		StreakPenalty:      10,
		GoalBonusPct:       0.25,
		GoalLatePenaltyPct: 0.30,
		MissedEasy:         5,
		MissedMedium:       10,
		MissedHard:         20,
	}
}

func (r Rules) Validate() error {
	if r.LevelCap <= 0 {
		return fmt.Errorf("rules: level_cap must be positive (got %d)", r.LevelCap)
	}
	for name, v := range map[string]int{
		"xp_easy": r.XPEasy, "xp_medium": r.XPMedium, "xp_hard": r.XPHard,
		"daily_bonus": r.DailyBonus, "streak_penalty": r.StreakPenalty,
		"missed_easy": r.MissedEasy, "missed_medium": r.MissedMedium, "missed_hard": r.MissedHard,
	} {
		if v < 0 {
			return fmt.Errorf("rules: %s must not be negative (got %d)", name, v)
		}
	}
	if r.GoalBonusPct < 0 || r.GoalLatePenaltyPct < 0 || r.GoalLatePenaltyPct > 1 {
		return fmt.Errorf("rules: goal percentages out of range (bonus %.2f, late %.2f)", r.GoalBonusPct, r.GoalLatePenaltyPct)
	}
	return nil
}

// BaseXP is the completion reward for a difficulty before goal adjustments.
func (r Rules) BaseXP(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return r.XPMedium
	case DifficultyHard:
		return r.XPHard
	default:
		return r.XPEasy
	}
}

// MissedPenalty is the XP lost when a goal passes its due date incomplete.
func (r Rules) MissedPenalty(d Difficulty) int {
	switch d {
	case DifficultyMedium:
		return r.MissedMedium
	case DifficultyHard:
		return r.MissedHard
	default:
		return r.MissedEasy
	}
}

// LevelFor derives the level from total XP: floor(xp/LevelCap)+1.
func (r Rules) LevelFor(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/r.LevelCap + 1
}

// XPIntoLevel is the progress inside the current level.
func (r Rules) XPIntoLevel(xp int) int {
	if xp < 0 {
		return 0
	}
	return xp % r.LevelCap
}

// XPToNextLevel is how much XP is still needed for the next level.
func (r Rules) XPToNextLevel(xp int) int {
	return r.LevelCap - r.XPIntoLevel(xp)
}

type XPResult struct {
	Value     int
	IsBonus   bool
	IsPenalty bool
}

// CalculateXP computes the reward for completing t on the given date.
// Goals finished before their due date earn a bonus, after it a penalty.
func (r Rules) CalculateXP(t storage.Task, on clock.Date) XPResult {
	base := r.BaseXP(parseStoredDifficulty(t.Difficulty))
	res := XPResult{Value: base}

	if t.IsGoal && !t.DueDate.IsZero() {
		switch {
		case on.Before(t.DueDate):
			res.Value += roundXP(float64(base) * r.GoalBonusPct)
			res.IsBonus = true
		case on.After(t.DueDate):
			res.Value -= roundXP(float64(base) * r.GoalLatePenaltyPct)
			res.IsPenalty = true
		}
	}

	if res.Value < 0 {
		res.Value = 0
	}
	return res
}

func roundXP(v float64) int {
	return int(math.Round(v))
}
