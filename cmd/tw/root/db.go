package root

import (
	"context"
	"fmt"
	"io"

	"github.com/Ankush23056/taskwarrior/internal/engine"
	"github.com/Ankush23056/taskwarrior/internal/storage"
	"github.com/Ankush23056/taskwarrior/internal/ui"
)

func (a *app) openService(ctx context.Context, n engine.Notifier) (*engine.Service, func(), error) {
	db, err := storage.Open(ctx, a.cfg.DBPath)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	svc := engine.NewService(storage.NewSQLiteKV(db),
		engine.WithNotifier(n),
		engine.WithRules(a.cfg.Rules),
		engine.WithLogger(a.log),
	)
	return svc, cleanup, nil
}

// session opens the service with a terminal notifier and runs Load, so
// day rollover and passive penalties are applied before the command acts.
func (a *app) session(ctx context.Context, out io.Writer) (*engine.Service, func(), error) {
	svc, cleanup, err := a.openService(ctx, ui.NewPrinter(out))
	if err != nil {
		return nil, nil, err
	}
	if res := svc.Load(ctx); res.FirstRun {
		fmt.Fprintln(out, ui.Heading(ui.IconShield, "Welcome, "+storage.DefaultProfileName+"!"))
	}
	return svc, cleanup, nil
}
