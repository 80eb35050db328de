package engine

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/Ankush23056/taskwarrior/internal/storage"
)

type AddXPResult struct {
	Amount      int
	XPBefore    int
	XPAfter     int
	LevelBefore int
	LevelAfter  int
	LevelUp     bool
	// Persisted is false when the profile write failed and nothing changed.
	Persisted bool
}

// AddXP applies an XP delta to the profile. It is the only place XP and
// level change: XP is clamped at zero, xpToday takes the raw delta.
func (s *Service) AddXP(ctx context.Context, amount int) AddXPResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addXP(ctx, amount)
}

func (s *Service) addXP(ctx context.Context, amount int) AddXPResult {
	before := s.profile(ctx)
	res := AddXPResult{
		Amount:      amount,
		XPBefore:    before.XP,
		XPAfter:     before.XP,
		LevelBefore: s.rules.LevelFor(before.XP),
	}
	res.LevelAfter = res.LevelBefore

	after, ok := s.profiles.Update(ctx, s.today(), func(p *storage.Profile) {
		xp := p.XP + amount
		if xp < 0 {
			xp = 0
		}
		p.XP = xp
		p.XPToday += amount
		p.Level = s.rules.LevelFor(xp)
	})
	if !ok {
		s.log.Warn("xp change dropped", zap.Int("amount", amount))
		return res
	}

	res.Persisted = true
	res.XPAfter = after.XP
	res.LevelAfter = after.Level
	res.LevelUp = res.LevelAfter > res.LevelBefore
	s.log.Debug("xp applied",
		zap.Int("amount", amount),
		zap.Int("xp", after.XP),
		zap.Int("level", after.Level),
		zap.Int("xp_today", after.XPToday))

	s.notify.StatsChanged()
	s.notify.FloatingXP(amount)
	if res.LevelUp {
		s.notify.Toast(fmt.Sprintf("Level Up! You are now Level %d!", res.LevelAfter), SeveritySuccess)
	}
	return res
}
