package engine

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/storage"
)

type PassiveResult struct {
	StreakLost bool
	// MissedGoals holds the ids of goals penalized by this run.
	MissedGoals []string
	XPDelta     int
	Message     string
}

// RunPassiveChecks charges penalties that accrue with elapsed time: a broken
// streak and goals past their due date. Both go through one AddXP call and
// one combined toast. Running it again on the same day changes nothing.
func (s *Service) RunPassiveChecks(ctx context.Context) PassiveResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.runPassiveChecks(ctx)
}

func (s *Service) runPassiveChecks(ctx context.Context) PassiveResult {
	today := s.today()
	p := s.profile(ctx)

	var (
		res   PassiveResult
		delta int
		msgs  []string
	)

	if !p.LastCompletedDate.IsZero() && p.Streak > 0 {
		gap, err := clock.DaysBetween(p.LastCompletedDate, today)
		if err != nil {
			s.log.Warn("skip streak decay: unreadable last completion date",
				zap.String("last_completed", p.LastCompletedDate.String()), zap.Error(err))
		} else if gap > 1 {
			if _, ok := s.profiles.Update(ctx, today, func(p *storage.Profile) { p.Streak = 0 }); ok {
				res.StreakLost = true
				delta -= s.rules.StreakPenalty
				msgs = append(msgs, fmt.Sprintf("Streak Lost! -%d XP.", s.rules.StreakPenalty))
			}
		}
	}

	tasks, tasksOK := s.tasks.Read(ctx)
	if !tasksOK {
		s.log.Warn("skip missed-goal checks: task list unreadable")
		tasks = nil
	}
	var (
		missed      []string
		missedMsgs  []string
		missedDelta int
	)
	for i := range tasks {
		t := &tasks[i]
		if !t.IsGoal || t.Completed || t.DueDate.IsZero() || t.Penalized {
			continue
		}
		if !today.After(t.DueDate) {
			continue
		}
		penalty := s.rules.MissedPenalty(parseStoredDifficulty(t.Difficulty))
		t.Penalized = true
		missed = append(missed, t.ID)
		missedDelta -= penalty
		missedMsgs = append(missedMsgs, fmt.Sprintf("Missed Quest %q: -%d XP.", t.Title, penalty))
	}
	if len(missed) > 0 {
		// The penalized flags must land before the XP does, otherwise the
		// next load would charge the same goals again.
		if s.tasks.Save(ctx, tasks) {
			res.MissedGoals = missed
			delta += missedDelta
			msgs = append(msgs, missedMsgs...)
		} else {
			s.log.Warn("missed-goal penalties deferred", zap.Int("goals", len(missed)))
		}
	}

	res.XPDelta = delta
	if delta == 0 {
		return res
	}

	res.Message = strings.Join(msgs, " ")
	s.log.Info("passive checks applied penalties",
		zap.Bool("streak_lost", res.StreakLost),
		zap.Int("missed_goals", len(res.MissedGoals)),
		zap.Int("xp_delta", delta))
	s.addXP(ctx, delta)
	s.notify.Toast(res.Message, SeverityError)
	return res
}
