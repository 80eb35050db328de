package engine

import (
	"context"

	"github.com/Ankush23056/taskwarrior/internal/storage"
)

// Achievement represents a badge the player can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker derives badges from the current profile only; nothing
// about past days is stored beyond bestStreak.
type AchievementChecker struct {
	profile storage.Profile
	rules   Rules
}

func NewAchievementChecker(p storage.Profile, rules Rules) *AchievementChecker {
	return &AchievementChecker{profile: p, rules: rules}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		c.levelAchievement("getting_started", "Getting Started", "Reach level 2", "🌱", 2),
		c.levelAchievement("seasoned", "Seasoned Adventurer", "Reach level 5", "⭐", 5),
		c.levelAchievement("veteran", "Veteran", "Reach level 10", "🌟", 10),
		c.levelAchievement("master", "Master", "Reach level 20", "💫", 20),

		// Quest milestones
		c.questAchievement("first_task", "First Quest", "Complete 1 quest", "✓", 1),
		c.questAchievement("productive", "Productive", "Complete 10 quests", "📋", 10),
		c.questAchievement("achiever", "Achiever", "Complete 50 quests", "🏅", 50),
		c.questAchievement("powerhouse", "Powerhouse", "Complete 100 quests", "🏆", 100),

		// Streak milestones
		c.streakAchievement("warming_up", "Warming Up", "Best streak of 3 days", "🔥", 3),
		c.streakAchievement("weekly", "Week Warrior", "Best streak of 7 days", "📅", 7),
		c.streakAchievement("unstoppable", "Unstoppable", "Best streak of 30 days", "⚡", 30),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	earned := c.rules.LevelFor(c.profile.XP) >= level
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) questAchievement(id, name, desc, icon string, count int) Achievement {
	earned := c.profile.QuestsCompleted >= count
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, days int) Achievement {
	best := c.profile.BestStreak
	if c.profile.Streak > best {
		best = c.profile.Streak
	}
	earned := best >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

// Achievements is a convenience wrapper over the current profile.
func (s *Service) Achievements(ctx context.Context) []Achievement {
	return NewAchievementChecker(s.Profile(ctx), s.rules).GetAchievements()
}
