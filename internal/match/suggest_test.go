package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func identity(s string) string { return s }

func TestClosest(t *testing.T) {
	words := []string{"meter", "metre", "foot", "ft", "gram"}

	best, ok := Closest("metr", words, identity, 2)
	assert.True(t, ok)
	assert.Equal(t, "meter", best.Value, "first candidate wins ties")
	assert.Equal(t, 1, best.Distance)

	best, ok = Closest("fute", words, identity, 2)
	assert.True(t, ok)
	assert.Equal(t, "ft", best.Text)
	assert.Equal(t, 2, best.Distance)

	_, ok = Closest("banana", words, identity, 2)
	assert.False(t, ok)

	_, ok = Closest("x", nil, identity, 2)
	assert.False(t, ok)
}

func TestClosest_ExactMatch(t *testing.T) {
	type entry struct {
		key string
		id  int
	}

	entries := []entry{{"gram", 1}, {"grams", 2}}

	best, ok := Closest("grams", entries, func(e entry) string { return e.key }, 0)
	assert.True(t, ok)
	assert.Equal(t, 2, best.Value.id)
	assert.Equal(t, 0, best.Distance)
}
