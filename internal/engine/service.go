package engine

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/storage"
)

// Service is the gamification engine plus the task lifecycle around it.
// Every exported method takes the service lock, so callers on different
// goroutines are serialized; unexported helpers assume it is held.
type Service struct {
	mu sync.Mutex

	profiles *storage.ProfileStore
	tasks    *storage.TaskStore

	clock  clock.Clock
	notify Notifier
	rules  Rules
	log    *zap.Logger
	newID  func() string
}

type Option func(*Service)

func WithClock(c clock.Clock) Option { return func(s *Service) { s.clock = c } }

func WithNotifier(n Notifier) Option { return func(s *Service) { s.notify = n } }

func WithRules(r Rules) Option { return func(s *Service) { s.rules = r } }

func WithLogger(l *zap.Logger) Option { return func(s *Service) { s.log = l } }

// WithIDGenerator replaces uuid task ids, mainly for tests.
func WithIDGenerator(fn func() string) Option { return func(s *Service) { s.newID = fn } }

func NewService(kv storage.KV, opts ...Option) *Service {
	s := &Service{
		clock:  clock.Real{},
		notify: NopNotifier{},
		rules:  DefaultRules(),
		log:    zap.NewNop(),
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notify == nil {
		s.notify = NopNotifier{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	s.log = s.log.Named("engine")
	s.profiles = storage.NewProfileStore(kv, s.log)
	s.tasks = storage.NewTaskStore(kv, s.log)
	return s
}

func (s *Service) ProfileStore() *storage.ProfileStore { return s.profiles }
func (s *Service) TaskStore() *storage.TaskStore       { return s.tasks }
func (s *Service) Rules() Rules                        { return s.rules }

func (s *Service) today() clock.Date { return clock.Today(s.clock) }

// Today is the service's current local date.
func (s *Service) Today() clock.Date { return s.today() }

func normalizeTitle(title string) (string, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return "", ValidationError{Field: "title", Reason: "title is required"}
	}
	return t, nil
}

// profile loads the profile and re-derives the level from XP, persisting
// the correction if the stored level drifted.
func (s *Service) profile(ctx context.Context) storage.Profile {
	today := s.today()
	p, _ := s.profiles.GetOrCreate(ctx, today)
	computed := s.rules.LevelFor(p.XP)
	if p.Level != computed {
		s.log.Debug("correcting stored level", zap.Int("stored", p.Level), zap.Int("computed", computed))
		p.Level = computed
		if fixed, ok := s.profiles.Update(ctx, today, func(sp *storage.Profile) { sp.Level = computed }); ok {
			return fixed
		}
	}
	return p
}

// Profile returns the current profile with its level re-derived.
func (s *Service) Profile(ctx context.Context) storage.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile(ctx)
}

// Tasks returns every task, completed ones included.
func (s *Service) Tasks(ctx context.Context) []storage.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tasks.List(ctx)
}

// ActiveTasks returns the tasks not yet completed.
func (s *Service) ActiveTasks(ctx context.Context) []storage.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return activeTasks(s.tasks.List(ctx))
}

func activeTasks(all []storage.Task) []storage.Task {
	out := make([]storage.Task, 0, len(all))
	for _, t := range all {
		if !t.Completed {
			out = append(out, t)
		}
	}
	return out
}

// ResolveID expands a unique id prefix to the full task id.
func (s *Service) ResolveID(ctx context.Context, prefix string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", ValidationError{Field: "id", Reason: "id is required"}
	}
	var match string
	for _, t := range s.tasks.List(ctx) {
		if t.ID == prefix {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, prefix) {
			if match != "" {
				return "", ErrAmbiguousID
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", ErrTaskNotFound
	}
	return match, nil
}
