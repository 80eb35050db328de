package root

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ankush23056/taskwarrior/internal/engine"
	"github.com/Ankush23056/taskwarrior/internal/storage"
)

type cliEnv struct {
	dbPath     string
	configPath string
}

func newCLIEnv(t *testing.T) cliEnv {
	t.Helper()
	dir := t.TempDir()
	env := cliEnv{
		dbPath:     filepath.Join(dir, "tw.db"),
		configPath: filepath.Join(dir, "config.yaml"),
	}
	t.Setenv("TASKWARRIOR_DB", env.dbPath)
	t.Setenv("TASKWARRIOR_CONFIG", env.configPath)
	t.Setenv("TASKWARRIOR_LOG_LEVEL", "")
	return env
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func (e cliEnv) tasks(t *testing.T) []storage.Task {
	t.Helper()
	ctx := context.Background()
	db, err := storage.Open(ctx, e.dbPath)
	require.NoError(t, err)
	defer db.Close()
	return engine.NewService(storage.NewSQLiteKV(db)).Tasks(ctx)
}

func TestAddListDo(t *testing.T) {
	env := newCLIEnv(t)

	out, err := runCLI(t, "add", "Water", "the", "plants")
	require.NoError(t, err)
	assert.Contains(t, out, "Welcome")
	assert.Contains(t, out, "Quest Accepted")
	assert.Contains(t, out, "Water the plants")

	_, err = runCLI(t, "add", "Ship report", "-d", "hard", "--due", "2999-01-01")
	require.NoError(t, err)

	tasks := env.tasks(t)
	require.Len(t, tasks, 2)
	assert.Equal(t, "easy", tasks[0].Difficulty)
	assert.True(t, tasks[1].IsGoal)
	assert.Equal(t, "hard", tasks[1].Difficulty)

	out, err = runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Water the plants")
	assert.Contains(t, out, "Ship report")
	assert.Contains(t, out, "+50 XP")
	assert.NotContains(t, out, "Welcome")

	out, err = runCLI(t, "do", tasks[0].ID[:8])
	require.NoError(t, err)
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "+10 XP")
	assert.Contains(t, out, "Streak Started!")

	out, err = runCLI(t, "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Water the plants")

	out, err = runCLI(t, "list", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "Water the plants")

	_, err = runCLI(t, "do", tasks[0].ID)
	assert.ErrorIs(t, err, engine.ErrTaskCompleted)
}

func TestAddValidation(t *testing.T) {
	newCLIEnv(t)

	_, err := runCLI(t, "add")
	assert.Error(t, err)

	_, err = runCLI(t, "add", "x", "-d", "impossible")
	var verr engine.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = runCLI(t, "add", "x", "--due", "soon")
	assert.ErrorAs(t, err, &verr)
}

func TestRmAndUnknownID(t *testing.T) {
	env := newCLIEnv(t)

	_, err := runCLI(t, "add", "Temporary")
	require.NoError(t, err)
	id := env.tasks(t)[0].ID

	out, err := runCLI(t, "rm", id[:6])
	require.NoError(t, err)
	assert.Contains(t, out, "Abandoned")
	assert.Empty(t, env.tasks(t))

	_, err = runCLI(t, "do", "deadbeef")
	assert.ErrorIs(t, err, engine.ErrTaskNotFound)
}

func TestStatusAndRename(t *testing.T) {
	newCLIEnv(t)

	out, err := runCLI(t, "rename", "Sir", "Lancelot")
	require.NoError(t, err)
	assert.Contains(t, out, "Identity Updated!")

	out, err = runCLI(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Sir Lancelot")
	assert.Contains(t, out, "Achievements (0/11)")
}

func TestConfigInitAndShow(t *testing.T) {
	env := newCLIEnv(t)

	out, err := runCLI(t, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, env.configPath)
	_, err = os.Stat(env.configPath)
	require.NoError(t, err)

	_, err = runCLI(t, "config", "init")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(env.configPath, []byte("rules:\n  xp_easy: 15\n"), 0o644))
	out, err = runCLI(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "xp_easy: 15")
	assert.Contains(t, out, "db_path: "+env.dbPath)

	_, err = runCLI(t, "add", "Bigger reward")
	require.NoError(t, err)
	out, err = runCLI(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "+15 XP")
}

func TestBrokenConfigIsReported(t *testing.T) {
	env := newCLIEnv(t)
	require.NoError(t, os.WriteFile(env.configPath, []byte("log_level: shouting\n"), 0o644))

	_, err := runCLI(t, "list")
	assert.Error(t, err)

	_, err = runCLI(t, "config", "init", "--force")
	assert.NoError(t, err)
	_, err = runCLI(t, "list")
	assert.NoError(t, err)
}
