package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Ankush23056/taskwarrior/internal/storage"
)

// newUnreadableEnv seeds a profile at 250 XP and three tasks, then returns
// with every read failing. Writes still succeed.
func newUnreadableEnv(t *testing.T) (*testEnv, *failingKV, string, string) {
	t.Helper()
	kv := &failingKV{KV: storage.NewMemoryKV(), failSet: map[string]bool{}}
	env := newTestServiceWithKV(t, kv)
	ctx := context.Background()

	if res := env.svc.AddXP(ctx, 250); !res.Persisted || res.LevelAfter != 3 {
		t.Fatalf("seed xp: %+v", res)
	}
	env.setProfile(t, func(p *storage.Profile) { p.Name = "Rin" })
	for _, title := range []string{"a", "b", "c"} {
		env.addTask(t, CreateTaskInput{Title: title})
	}
	env.rec.Drain()

	profile, tasks := kv.raw(t, storage.ProfileKey), kv.raw(t, storage.TasksKey)
	kv.setReadsFailing(true)
	return env, kv, profile, tasks
}

func assertUntouched(t *testing.T, kv *failingKV, profile, tasks string) {
	t.Helper()
	if got := kv.raw(t, storage.ProfileKey); got != profile {
		t.Fatalf("profile overwritten:\n got %s\nwant %s", got, profile)
	}
	if got := kv.raw(t, storage.TasksKey); got != tasks {
		t.Fatalf("tasks overwritten:\n got %s\nwant %s", got, tasks)
	}
}

func TestAddXPReadFailureKeepsProfile(t *testing.T) {
	env, kv, profile, tasks := newUnreadableEnv(t)
	ctx := context.Background()

	if res := env.svc.AddXP(ctx, 5); res.Persisted {
		t.Fatalf("AddXP persisted on unreadable profile: %+v", res)
	}
	assertUntouched(t, kv, profile, tasks)

	kv.setReadsFailing(false)
	p := env.svc.Profile(ctx)
	if p.XP != 250 || p.Level != 3 || p.Name != "Rin" {
		t.Fatalf("profile=%+v, want Rin at 250 xp level 3", p)
	}
}

func TestRenameReadFailureKeepsProfile(t *testing.T) {
	env, kv, profile, tasks := newUnreadableEnv(t)

	if _, err := env.svc.Rename(context.Background(), "Someone Else"); err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if got := toastMessages(env.rec.Drain()); len(got) != 0 {
		t.Fatalf("toasts=%q, want none", got)
	}
	assertUntouched(t, kv, profile, tasks)
}

func TestCreateTaskReadFailureKeepsTasks(t *testing.T) {
	env, kv, profile, tasks := newUnreadableEnv(t)
	ctx := context.Background()

	res, err := env.svc.CreateTask(ctx, CreateTaskInput{Title: "d"})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if res.Saved {
		t.Fatalf("expected Saved=false")
	}
	assertUntouched(t, kv, profile, tasks)

	kv.setReadsFailing(false)
	if got := env.svc.Tasks(ctx); len(got) != 3 {
		t.Fatalf("tasks=%+v, want the original three", got)
	}
}

func TestCompleteTaskReadFailureKeepsState(t *testing.T) {
	env, kv, profile, tasks := newUnreadableEnv(t)

	res, err := env.svc.CompleteTask(context.Background(), "task-01")
	if err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}
	if res.Saved || res.LevelUp {
		t.Fatalf("result=%+v, want nothing saved", res)
	}
	assertUntouched(t, kv, profile, tasks)
}

func TestDeleteTaskReadFailureKeepsTasks(t *testing.T) {
	env, kv, profile, tasks := newUnreadableEnv(t)
	ctx := context.Background()

	res, err := env.svc.DeleteTask(ctx, "task-02")
	if err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if res.Saved {
		t.Fatalf("expected Saved=false")
	}
	assertUntouched(t, kv, profile, tasks)

	kv.setReadsFailing(false)
	if _, err := env.svc.DeleteTask(ctx, "task-02"); err != nil {
		t.Fatalf("delete after recovery: %v", err)
	}
	if _, err := env.svc.DeleteTask(ctx, "task-02"); !errors.Is(err, ErrTaskNotFound) {
		t.Fatalf("err=%v, want ErrTaskNotFound", err)
	}
}

func TestLoadAndPassiveChecksReadFailureKeepState(t *testing.T) {
	env, kv, profile, tasks := newUnreadableEnv(t)
	ctx := context.Background()

	env.clock.AdvanceDays(3)
	res := env.svc.Load(ctx)
	if res.FirstRun || res.DayRolledOver || res.Passive.XPDelta != 0 {
		t.Fatalf("load=%+v, want no changes", res)
	}
	if passive := env.svc.RunPassiveChecks(ctx); passive.XPDelta != 0 || len(passive.MissedGoals) != 0 {
		t.Fatalf("passive=%+v, want no changes", passive)
	}
	assertUntouched(t, kv, profile, tasks)
}

func TestPassiveChecksSkipGoalsWhenTaskListUnreadable(t *testing.T) {
	kv := &failingKV{KV: storage.NewMemoryKV(), failSet: map[string]bool{}}
	env := newTestServiceWithKV(t, kv)
	ctx := context.Background()

	env.seedTasks(t, storage.Task{ID: "late", Title: "Overdue", Difficulty: "easy", IsGoal: true, DueDate: env.daysAgo(t, 2)})
	tasks := kv.raw(t, storage.TasksKey)

	kv.setReadsFailing(true)
	if res := env.svc.RunPassiveChecks(ctx); len(res.MissedGoals) != 0 {
		t.Fatalf("missed=%v, want none while unreadable", res.MissedGoals)
	}
	if got := kv.raw(t, storage.TasksKey); got != tasks {
		t.Fatalf("tasks overwritten: %s", got)
	}

	kv.setReadsFailing(false)
	if res := env.svc.RunPassiveChecks(ctx); len(res.MissedGoals) != 1 {
		t.Fatalf("missed=%v, want the overdue goal once readable", res.MissedGoals)
	}
}
