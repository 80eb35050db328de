package storage

import (
	"time"

	"github.com/Ankush23056/taskwarrior/internal/clock"
)

// Profile is the singleton gamification record. Level is derived from XP by
// the engine and is stored only because the record is flat.
type Profile struct {
	Name              string     `json:"name"`
	XP                int        `json:"xp"`
	Level             int        `json:"level"`
	Streak            int        `json:"streak"`
	BestStreak        int        `json:"bestStreak"`
	LastCompletedDate clock.Date `json:"lastCompletedDate"`
	QuestsCompleted   int        `json:"questsCompleted"`
	XPToday           int        `json:"xpToday"`
	LastLoginDate     clock.Date `json:"lastLoginDate"`
}

const DefaultProfileName = "Adventurer"

// DefaultProfile is what a first run starts with.
func DefaultProfile(today clock.Date) Profile {
	return Profile{
		Name:          DefaultProfileName,
		Level:         1,
		LastLoginDate: today,
	}
}

// FallbackProfile stands in for a stored profile that cannot be decoded.
func FallbackProfile() Profile {
	return Profile{Name: DefaultProfileName, Level: 1}
}

type Task struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Difficulty    string     `json:"difficulty"`
	DueDate       clock.Date `json:"dueDate"`
	IsGoal        bool       `json:"isGoal"`
	Completed     bool       `json:"completed"`
	CompletedDate clock.Date `json:"completedDate"`
	Penalized     bool       `json:"penalized,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}
