package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/storage"
)

type StreakOutcome string

const (
	// StreakSameDay: a task was already completed today; the streak is untouched.
	StreakSameDay StreakOutcome = "same_day"
	// StreakContinued: yesterday had a completion; the streak grew and paid the daily bonus.
	StreakContinued StreakOutcome = "continued"
	// StreakStarted: no usable previous day; the streak restarts at 1 without bonus or penalty.
	StreakStarted StreakOutcome = "started"
)

type StreakResult struct {
	Outcome StreakOutcome
	Streak  int
	BonusXP int
	// Persisted is false when the profile could not be updated; Outcome
	// then describes what would have happened.
	Persisted bool
}

// CheckDailyConsistency updates streak bookkeeping after a completion.
// A gap of more than one day resets the streak here without a penalty;
// the penalty for breaking a streak is only charged by RunPassiveChecks.
func (s *Service) CheckDailyConsistency(ctx context.Context) StreakResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.checkDailyConsistency(ctx)
}

func (s *Service) checkDailyConsistency(ctx context.Context) StreakResult {
	today := s.today()
	p := s.profile(ctx)

	if p.LastCompletedDate == today {
		_, ok := s.profiles.Update(ctx, today, func(p *storage.Profile) { p.QuestsCompleted++ })
		return StreakResult{Outcome: StreakSameDay, Streak: p.Streak, Persisted: ok}
	}

	streak := 1
	if !p.LastCompletedDate.IsZero() {
		gap, err := clock.DaysBetween(p.LastCompletedDate, today)
		switch {
		case err != nil:
			s.log.Warn("unreadable last completion date, restarting streak",
				zap.String("last_completed", p.LastCompletedDate.String()), zap.Error(err))
		case gap == 1:
			streak = p.Streak + 1
		}
	}

	_, ok := s.profiles.Update(ctx, today, func(p *storage.Profile) {
		p.Streak = streak
		if streak > p.BestStreak {
			p.BestStreak = streak
		}
		p.LastCompletedDate = today
		p.QuestsCompleted++
	})
	if !ok {
		outcome := StreakStarted
		if streak > 1 {
			outcome = StreakContinued
		}
		return StreakResult{Outcome: outcome, Streak: p.Streak}
	}
	s.log.Debug("streak updated", zap.Int("from", p.Streak), zap.Int("to", streak))

	if streak > 1 {
		bonus := s.rules.DailyBonus
		s.addXP(ctx, bonus)
		s.notify.Toast(fmt.Sprintf("Daily Streak Bonus: +%d XP!", bonus), SeveritySuccess)
		return StreakResult{Outcome: StreakContinued, Streak: streak, BonusXP: bonus, Persisted: true}
	}

	s.notify.StatsChanged()
	s.notify.Toast("Streak Started!", SeveritySuccess)
	return StreakResult{Outcome: StreakStarted, Streak: streak, Persisted: true}
}
