package engine

import (
	"errors"
	"testing"

	"github.com/Ankush23056/taskwarrior/internal/clock"
	"github.com/Ankush23056/taskwarrior/internal/storage"
)

func TestCalculateXPNonGoal(t *testing.T) {
	r := DefaultRules()
	due := clock.Date("2026-03-01")
	for _, d := range []struct {
		diff string
		want int
	}{{"easy", 10}, {"medium", 20}, {"hard", 40}} {
		// A due date on a non-goal task is ignored.
		for _, task := range []storage.Task{
			{Difficulty: d.diff},
			{Difficulty: d.diff, DueDate: due},
		} {
			got := r.CalculateXP(task, "2026-03-10")
			if got != (XPResult{Value: d.want}) {
				t.Fatalf("CalculateXP(%+v)=%+v, want %d without flags", task, got, d.want)
			}
		}
	}
}

func TestCalculateXPGoal(t *testing.T) {
	r := DefaultRules()
	due := clock.Date("2026-03-10")
	cases := []struct {
		diff   string
		on     clock.Date
		want   XPResult
		reason string
	}{
		{"easy", "2026-03-09", XPResult{Value: 13, IsBonus: true}, "early"},
		{"easy", "2026-03-10", XPResult{Value: 10}, "on time"},
		{"easy", "2026-03-11", XPResult{Value: 7, IsPenalty: true}, "late"},
		{"medium", "2026-02-01", XPResult{Value: 25, IsBonus: true}, "early"},
		{"medium", "2026-03-10", XPResult{Value: 20}, "on time"},
		{"medium", "2027-01-01", XPResult{Value: 14, IsPenalty: true}, "late"},
		{"hard", "2026-03-09", XPResult{Value: 50, IsBonus: true}, "early"},
		{"hard", "2026-03-10", XPResult{Value: 40}, "on time"},
		{"hard", "2026-03-20", XPResult{Value: 28, IsPenalty: true}, "late"},
	}
	for _, tc := range cases {
		task := storage.Task{Difficulty: tc.diff, IsGoal: true, DueDate: due}
		if got := r.CalculateXP(task, tc.on); got != tc.want {
			t.Fatalf("%s %s: got %+v, want %+v", tc.diff, tc.reason, got, tc.want)
		}
	}
}

func TestCalculateXPGoalWithoutDueDate(t *testing.T) {
	got := DefaultRules().CalculateXP(storage.Task{Difficulty: "hard", IsGoal: true}, "2026-03-10")
	if got != (XPResult{Value: 40}) {
		t.Fatalf("got %+v, want plain base xp", got)
	}
}

func TestCalculateXPNeverNegative(t *testing.T) {
	r := DefaultRules()
	r.GoalLatePenaltyPct = 1.5
	task := storage.Task{Difficulty: "easy", IsGoal: true, DueDate: "2026-03-01"}
	if got := r.CalculateXP(task, "2026-03-10"); got.Value != 0 || !got.IsPenalty {
		t.Fatalf("got %+v, want 0 with penalty flag", got)
	}
}

func TestCalculateXPUnknownDifficultyIsEasy(t *testing.T) {
	if got := DefaultRules().CalculateXP(storage.Task{Difficulty: "epic"}, "2026-03-10"); got.Value != 10 {
		t.Fatalf("got %+v, want easy xp", got)
	}
}

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{
		"":       DifficultyEasy,
		"e":      DifficultyEasy,
		"Easy":   DifficultyEasy,
		"m":      DifficultyMedium,
		"med":    DifficultyMedium,
		"MEDIUM": DifficultyMedium,
		" h ":    DifficultyHard,
		"hard":   DifficultyHard,
	}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		if err != nil || got != want {
			t.Fatalf("ParseDifficulty(%q)=%q,%v want %q", in, got, err, want)
		}
	}

	_, err := ParseDifficulty("nightmare")
	var verr ValidationError
	if !errors.As(err, &verr) || verr.Field != "difficulty" {
		t.Fatalf("err=%v, want difficulty ValidationError", err)
	}
}

func TestRulesValidate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("default rules invalid: %v", err)
	}

	bad := []func(r *Rules){
		func(r *Rules) { r.LevelCap = 0 },
		func(r *Rules) { r.XPHard = -1 },
		func(r *Rules) { r.StreakPenalty = -3 },
		func(r *Rules) { r.GoalBonusPct = -0.1 },
		func(r *Rules) { r.GoalLatePenaltyPct = 1.2 },
	}
	for i, mutate := range bad {
		r := DefaultRules()
		mutate(&r)
		if err := r.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, r)
		}
	}
}
