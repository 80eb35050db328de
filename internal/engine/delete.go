package engine

import (
	"context"
	"fmt"

	"github.com/Ankush23056/taskwarrior/internal/storage"
)

type DeleteResult struct {
	Task storage.Task
	// Saved is false when the task list could not be read or written; the
	// task is then still stored.
	Saved bool
}

// DeleteTask removes a task whatever its state. XP already earned or lost
// through it is kept.
func (s *Service) DeleteTask(ctx context.Context, id string) (*DeleteResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tasks, ok := s.tasks.Read(ctx)
	if !ok {
		return &DeleteResult{Task: storage.Task{ID: id}}, nil
	}
	i := storage.FindTask(tasks, id)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	res := &DeleteResult{Task: tasks[i]}
	tasks = append(tasks[:i], tasks[i+1:]...)

	if s.tasks.Save(ctx, tasks) {
		res.Saved = true
		s.notify.StatsChanged()
	}
	return res, nil
}
