package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Ankush23056/taskwarrior/cmd/tw/root"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	root.Execute(ctx)
}
