package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"
)

// TaskStore holds the ordered task list under a single key. Like
// ProfileStore it logs persistence failures instead of returning them.
type TaskStore struct {
	kv  KV
	log *zap.Logger
}

func NewTaskStore(kv KV, log *zap.Logger) *TaskStore {
	if log == nil {
		log = zap.NewNop()
	}
	return &TaskStore{kv: kv, log: log.Named("tasks")}
}

// List returns all tasks in insertion order. Missing, unreadable or
// malformed data yields an empty list. Use Read before writing back.
func (s *TaskStore) List(ctx context.Context) []Task {
	tasks, _ := s.Read(ctx)
	return tasks
}

// Read is List for read-modify-write callers: ok is false when the store
// could not be reached, and the caller must not Save over it.
func (s *TaskStore) Read(ctx context.Context) ([]Task, bool) {
	raw, ok, err := s.kv.Get(ctx, TasksKey)
	if err != nil {
		s.log.Error("read tasks", zap.Error(err))
		return []Task{}, false
	}
	if !ok || raw == "" {
		return []Task{}, true
	}
	var out []Task
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		s.log.Warn("malformed task list, treating as empty", zap.Error(err))
		return []Task{}, true
	}
	if out == nil {
		out = []Task{}
	}
	return out, true
}

// Save replaces the whole task list. It reports whether the write landed.
func (s *TaskStore) Save(ctx context.Context, tasks []Task) bool {
	if err := s.put(ctx, tasks); err != nil {
		s.log.Error("save tasks", zap.Int("count", len(tasks)), zap.Error(err))
		return false
	}
	return true
}

func (s *TaskStore) put(ctx context.Context, tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("marshal tasks: %w", err)
	}
	return s.kv.Set(ctx, TasksKey, string(data))
}

// FindTask returns the index of the task with id, or -1.
func FindTask(tasks []Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}
