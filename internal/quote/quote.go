package quote

import (
	"fmt"
	"math/rand/v2"
)

type Quote struct {
	Text   string
	Author string
}

func (q Quote) String() string {
	return fmt.Sprintf("%q - %s", q.Text, q.Author)
}

var builtin = []Quote{
	{"The secret of getting ahead is getting started.", "Mark Twain"},
	{"Don't watch the clock; do what it does. Keep going.", "Sam Levenson"},
	{"The future depends on what you do today.", "Mahatma Gandhi"},
	{"Success is not final, failure is not fatal.", "Winston Churchill"},
	{"Believe you can and you're halfway there.", "Theodore Roosevelt"},
	{"The only way to do great work is to love what you do.", "Steve Jobs"},
	{"Excellence is not a destination; it is a continuous journey.", "Brian Tracy"},
	{"Do something today that your future self will thank you for.", "Sean Patrick Flanery"},
	{"Your limitation, it's only your imagination.", "Unknown"},
	{"Push yourself, because no one else is going to do it for you.", "Unknown"},
	{"Sometimes we're tested not to show our weaknesses but to discover our strengths.", "Unknown"},
	{"The harder you work for something, the greater you'll feel when you achieve it.", "Unknown"},
	{"Dream bigger. Do bigger.", "Unknown"},
	{"Don't stop when you're tired. Stop when you're done.", "Unknown"},
	{"Great things never came from comfort zones.", "Unknown"},
	{"Success is the sum of small efforts repeated day in and day out.", "Robert Collier"},
	{"Nothing is impossible to a willing heart.", "Unknown"},
}

// Picker hands out motivational quotes at random.
type Picker struct {
	quotes []Quote
	intn   func(n int) int
}

// NewPicker uses the built-in list. A nil rng falls back to the global source.
func NewPicker(rng *rand.Rand) *Picker {
	p := &Picker{quotes: builtin, intn: rand.IntN}
	if rng != nil {
		p.intn = rng.IntN
	}
	return p
}

func (p *Picker) Pick() Quote {
	return p.quotes[p.intn(len(p.quotes))]
}

// All returns a copy of the quote list.
func (p *Picker) All() []Quote {
	return append([]Quote(nil), p.quotes...)
}
