package engine

import (
	"context"

	"go.uber.org/zap"

	"github.com/Ankush23056/taskwarrior/internal/storage"
)

type LoadResult struct {
	FirstRun      bool
	DayRolledOver bool
	Passive       PassiveResult
}

// Load runs the start-of-session reconciliation: first-run setup, the
// daily xpToday reset, then passive checks. Call it before rendering.
func (s *Service) Load(ctx context.Context) LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res LoadResult
	today := s.today()

	p, created := s.profiles.GetOrCreate(ctx, today)
	if created {
		res.FirstRun = true
		s.tasks.Save(ctx, []storage.Task{})
		s.log.Info("created profile", zap.String("name", p.Name))
	}

	if p.LastLoginDate != today {
		if _, ok := s.profiles.Update(ctx, today, func(p *storage.Profile) {
			p.XPToday = 0
			p.LastLoginDate = today
		}); ok {
			res.DayRolledOver = true
			s.log.Debug("new day", zap.String("previous", p.LastLoginDate.String()), zap.String("today", today.String()))
		}
	}

	res.Passive = s.runPassiveChecks(ctx)
	s.notify.StatsChanged()
	return res
}

// Rename changes the display name.
func (s *Service) Rename(ctx context.Context, name string) (storage.Profile, error) {
	n, err := normalizeTitle(name)
	if err != nil {
		return storage.Profile{}, ValidationError{Field: "name", Reason: "name is required"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.profiles.Update(ctx, s.today(), func(p *storage.Profile) { p.Name = n })
	if ok {
		s.notify.StatsChanged()
		s.notify.Toast("Identity Updated!", SeveritySuccess)
	}
	return p, nil
}

// HeroStats is the read model behind the stats panel.
type HeroStats struct {
	Name            string
	Level           int
	XP              int
	XPIntoLevel     int
	XPToNextLevel   int
	LevelCap        int
	Streak          int
	BestStreak      int
	XPToday         int
	QuestsCompleted int
	ActiveTasks     int
}

// Progress is the fraction of the current level already earned.
func (h HeroStats) Progress() float64 {
	if h.LevelCap <= 0 {
		return 0
	}
	return float64(h.XPIntoLevel) / float64(h.LevelCap)
}

func (s *Service) Stats(ctx context.Context) HeroStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.profile(ctx)
	return HeroStats{
		Name:            p.Name,
		Level:           p.Level,
		XP:              p.XP,
		XPIntoLevel:     s.rules.XPIntoLevel(p.XP),
		XPToNextLevel:   s.rules.XPToNextLevel(p.XP),
		LevelCap:        s.rules.LevelCap,
		Streak:          p.Streak,
		BestStreak:      p.BestStreak,
		XPToday:         p.XPToday,
		QuestsCompleted: p.QuestsCompleted,
		ActiveTasks:     len(activeTasks(s.tasks.List(ctx))),
	}
}
