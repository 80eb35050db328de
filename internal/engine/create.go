package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/storage"
)

type CreateTaskInput struct {
	Title      string
	Difficulty Difficulty
	// DueDate only matters for goals.
	DueDate clock.Date
	IsGoal  bool
}

type CreateResult struct {
	Task  storage.Task
	Saved bool
}

func (s *Service) CreateTask(ctx context.Context, in CreateTaskInput) (*CreateResult, error) {
	title, err := normalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}

	diff := in.Difficulty
	if diff == "" {
		diff = DefaultDifficulty
	}
	if !diff.IsValid() {
		return nil, ValidationError{Field: "difficulty", Reason: fmt.Sprintf("%q is not one of easy, medium, hard", diff)}
	}

	due := in.DueDate
	if !due.IsZero() {
		if due, err = clock.ParseDate(due.String()); err != nil {
			return nil, ValidationError{Field: "due date", Reason: err.Error()}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := storage.Task{
		ID:         s.newID(),
		Title:      title,
		Difficulty: string(diff),
		DueDate:    due,
		IsGoal:     in.IsGoal,
		CreatedAt:  s.clock.Now().UTC(),
	}

	tasks, ok := s.tasks.Read(ctx)
	if !ok {
		return &CreateResult{Task: task}, nil
	}
	tasks = append(tasks, task)
	if !s.tasks.Save(ctx, tasks) {
		return &CreateResult{Task: task}, nil
	}
	s.log.Debug("task created", zap.String("id", task.ID), zap.String("difficulty", task.Difficulty), zap.Bool("goal", task.IsGoal))

	s.notify.StatsChanged()
	s.notify.Toast("Quest Accepted", SeveritySuccess)
	return &CreateResult{Task: task, Saved: true}, nil
}
