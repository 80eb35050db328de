package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/Ankush23056/taskwarrior/internal/engine"
)

// Printer is the CLI notifier: toasts and XP deltas become lines on out.
// Stats refreshes are ignored because every command prints its own summary.
type Printer struct {
	mu  sync.Mutex
	out io.Writer
}

func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

func (p *Printer) StatsChanged() {}

func (p *Printer) FloatingXP(amount int) {
	if amount == 0 {
		return
	}
	p.println(IconBolt + " " + XPText(amount))
}

func (p *Printer) Toast(msg string, sev engine.Severity) {
	p.println(SeverityText(msg, sev))
}

func (p *Printer) TaskCompleted(string) {}

func (p *Printer) println(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintln(p.out, line)
}

var _ engine.Notifier = (*Printer)(nil)
