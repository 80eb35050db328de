package engine

import (
	"context"
	"testing"

	"github.com/Ankush23056/taskwarrior/internal/storage"
)

func TestSameDayCompletionsKeepStreak(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	a := env.addTask(t, CreateTaskInput{Title: "a"})
	b := env.addTask(t, CreateTaskInput{Title: "b"})
	if _, err := env.svc.CompleteTask(ctx, a.ID); err != nil {
		t.Fatalf("complete a: %v", err)
	}
	env.rec.Drain()

	res, err := env.svc.CompleteTask(ctx, b.ID)
	if err != nil {
		t.Fatalf("complete b: %v", err)
	}
	if res.Streak.Outcome != StreakSameDay || res.Streak.Streak != 1 {
		t.Fatalf("streak=%+v, want same-day at 1", res.Streak)
	}
	if got := toastMessages(env.rec.Drain()); len(got) != 0 {
		t.Fatalf("unexpected toasts on second completion: %q", got)
	}

	p := env.svc.Profile(ctx)
	if p.Streak != 1 || p.QuestsCompleted != 2 || p.XP != 20 {
		t.Fatalf("profile=%+v, want streak 1, 2 quests, 20 xp", p)
	}
}

func TestStreakContinuesNextDayWithBonus(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	first := env.addTask(t, CreateTaskInput{Title: "day one"})
	if _, err := env.svc.CompleteTask(ctx, first.ID); err != nil {
		t.Fatalf("complete: %v", err)
	}

	env.clock.AdvanceDays(1)
	if res := env.svc.Load(ctx); res.Passive.XPDelta != 0 || res.Passive.StreakLost {
		t.Fatalf("passive after one day=%+v, want nothing", res.Passive)
	}
	second := env.addTask(t, CreateTaskInput{Title: "day two"})
	env.rec.Drain()

	res, err := env.svc.CompleteTask(ctx, second.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if res.Streak != (StreakResult{Outcome: StreakContinued, Streak: 2, BonusXP: 5, Persisted: true}) {
		t.Fatalf("streak=%+v", res.Streak)
	}
	if got := toastMessages(env.rec.Drain()); len(got) != 1 || got[0] != "Daily Streak Bonus: +5 XP!" {
		t.Fatalf("toasts=%q", got)
	}

	p := env.svc.Profile(ctx)
	if p.XP != 25 || p.XPToday != 15 || p.Streak != 2 || p.BestStreak != 2 {
		t.Fatalf("profile=%+v, want xp 25, xpToday 15, streak 2", p)
	}
}

func TestStreakGapRestartsWithoutPenalty(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	env.setProfile(t, func(p *storage.Profile) {
		p.XP = 60
		p.Streak = 4
		p.BestStreak = 4
		p.LastCompletedDate = env.daysAgo(t, 3)
	})
	env.rec.Drain()

	res := env.svc.CheckDailyConsistency(ctx)
	if res.Outcome != StreakStarted || res.Streak != 1 || res.BonusXP != 0 {
		t.Fatalf("result=%+v, want restart at 1", res)
	}
	p := env.svc.Profile(ctx)
	if p.XP != 60 || p.Streak != 1 || p.BestStreak != 4 || p.LastCompletedDate != env.today() {
		t.Fatalf("profile=%+v", p)
	}
	if got := toastMessages(env.rec.Drain()); len(got) != 1 || got[0] != "Streak Started!" {
		t.Fatalf("toasts=%q", got)
	}
}

func TestStreakUnreadableLastCompletionRestarts(t *testing.T) {
	env := newTestService(t)
	ctx := context.Background()

	env.setProfile(t, func(p *storage.Profile) {
		p.Streak = 6
		p.LastCompletedDate = "someday"
	})
	if res := env.svc.CheckDailyConsistency(ctx); res.Outcome != StreakStarted || res.Streak != 1 {
		t.Fatalf("result=%+v, want restart", res)
	}
}

func TestStreakWriteFailureIsNotPersisted(t *testing.T) {
	kv := &failingKV{KV: storage.NewMemoryKV(), failSet: map[string]bool{}}
	env := newTestServiceWithKV(t, kv)
	ctx := context.Background()

	env.setProfile(t, func(p *storage.Profile) {
		p.Streak = 3
		p.LastCompletedDate = env.daysAgo(t, 1)
	})
	env.rec.Drain()
	kv.setFailing(storage.ProfileKey, true)

	res := env.svc.CheckDailyConsistency(ctx)
	if res.Persisted || res.BonusXP != 0 {
		t.Fatalf("result=%+v, want unpersisted without bonus", res)
	}
	if got := toastMessages(env.rec.Drain()); len(got) != 0 {
		t.Fatalf("toasts=%q, want none", got)
	}

	kv.setFailing(storage.ProfileKey, false)
	if p := env.svc.Profile(ctx); p.Streak != 3 || p.QuestsCompleted != 0 {
		t.Fatalf("profile=%+v, want untouched", p)
	}

	res = env.svc.CheckDailyConsistency(ctx)
	if res != (StreakResult{Outcome: StreakContinued, Streak: 4, BonusXP: 5, Persisted: true}) {
		t.Fatalf("result=%+v", res)
	}
	kv.setFailing(storage.ProfileKey, true)
	if res := env.svc.CheckDailyConsistency(ctx); res.Outcome != StreakSameDay || res.Persisted {
		t.Fatalf("same-day result=%+v, want unpersisted", res)
	}
}
