package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ankush23056/taskwarrior/internal/storage"
)

type CompleteResult struct {
	TaskID      string
	Title       string
	XP          XPResult
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	Streak      StreakResult
	// Saved is false when the task list could not be read or written; no
	// XP was awarded in that case.
	Saved bool
}

// CompleteTask marks a task done, awards its XP and updates the streak.
func (s *Service) CompleteTask(ctx context.Context, id string) (*CompleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, ok := s.tasks.Read(ctx)
	if !ok {
		return &CompleteResult{TaskID: id}, nil
	}
	i := storage.FindTask(tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	if tasks[i].Completed {
		return nil, fmt.Errorf("%w: %s", ErrTaskCompleted, id)
	}

	today := s.today()
	xp := s.rules.CalculateXP(tasks[i], today)

	tasks[i].Completed = true
	tasks[i].CompletedDate = today

	levelBefore := s.rules.LevelFor(s.profile(ctx).XP)
	res := &CompleteResult{
		TaskID:      id,
		Title:       tasks[i].Title,
		XP:          xp,
		LevelBefore: levelBefore,
		LevelAfter:  levelBefore,
	}
	if !s.tasks.Save(ctx, tasks) {
		return res, nil
	}
	res.Saved = true

	s.addXP(ctx, xp.Value)
	res.Streak = s.checkDailyConsistency(ctx)
	s.notify.TaskCompleted(id)

	res.LevelAfter = s.rules.LevelFor(s.profile(ctx).XP)
	res.LevelUp = res.LevelAfter > res.LevelBefore

	s.log.Debug("task completed",
		zap.String("id", id),
		zap.Int("xp", xp.Value),
		zap.Bool("bonus", xp.IsBonus),
		zap.Bool("penalty", xp.IsPenalty),
		zap.String("streak", string(res.Streak.Outcome)))
	return res, nil
}
