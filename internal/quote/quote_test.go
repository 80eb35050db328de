package quote

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickIsDeterministicWithSeed(t *testing.T) {
	a := NewPicker(rand.New(rand.NewPCG(1, 2)))
	b := NewPicker(rand.New(rand.NewPCG(1, 2)))
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Pick(), b.Pick())
	}
}

func TestPickReturnsKnownQuote(t *testing.T) {
	p := NewPicker(nil)
	all := p.All()
	require.NotEmpty(t, all)
	for i := 0; i < 50; i++ {
		assert.Contains(t, all, p.Pick())
	}
}

func TestQuotesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, q := range NewPicker(nil).All() {
		require.False(t, seen[q.Text], "duplicate quote %q", q.Text)
		seen[q.Text] = true
		assert.NotEmpty(t, q.Author)
	}
}

func TestString(t *testing.T) {
	q := Quote{Text: "Dream bigger. Do bigger.", Author: "Unknown"}
	assert.Equal(t, `"Dream bigger. Do bigger." - Unknown`, q.String())
}
