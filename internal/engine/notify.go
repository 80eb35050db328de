package engine

import "sync"

// Notifier receives view updates produced by the engine. The engine never
// reads anything back from it.
type Notifier interface {
	StatsChanged()
	FloatingXP(amount int)
	Toast(msg string, sev Severity)
	TaskCompleted(taskID string)
}

type NopNotifier struct{}

func (NopNotifier) StatsChanged()          {}
func (NopNotifier) FloatingXP(int)         {}
func (NopNotifier) Toast(string, Severity) {}
func (NopNotifier) TaskCompleted(string)   {}

type EventKind string

const (
	EventStatsChanged  EventKind = "stats"
	EventFloatingXP    EventKind = "xp"
	EventToast         EventKind = "toast"
	EventTaskCompleted EventKind = "completed"
)

type Event struct {
	Kind     EventKind
	Amount   int
	Message  string
	Severity Severity
	TaskID   string
}

// Recorder buffers notifications so a caller can render them later.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) add(e Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *Recorder) StatsChanged() { r.add(Event{Kind: EventStatsChanged}) }

func (r *Recorder) FloatingXP(amount int) { r.add(Event{Kind: EventFloatingXP, Amount: amount}) }

func (r *Recorder) Toast(msg string, sev Severity) {
	r.add(Event{Kind: EventToast, Message: msg, Severity: sev})
}

func (r *Recorder) TaskCompleted(taskID string) {
	r.add(Event{Kind: EventTaskCompleted, TaskID: taskID})
}

// Events returns a copy of everything recorded so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Drain returns and clears the buffer.
func (r *Recorder) Drain() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

// Toasts returns only the toast events recorded so far.
func (r *Recorder) Toasts() []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Kind == EventToast {
			out = append(out, e)
		}
	}
	return out
}
