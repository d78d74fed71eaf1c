package match

// Scored is a candidate together with its edit distance from the input.
type Scored[T any] struct {
	Value    T
	Text     string
	Distance int
}

// Closest returns the candidate nearest to input when its distance does not
// exceed maxDistance. The first candidate wins ties.
func Closest[T any](input string, candidates []T, text func(T) string, maxDistance int) (Scored[T], bool) {
	var best Scored[T]

	found := false

	for _, c := range candidates {
		t := text(c)

		d := Levenshtein(input, t)
		if d > maxDistance {
			continue
		}

		if !found || d < best.Distance {
			best = Scored[T]{Value: c, Text: t, Distance: d}
			found = true
		}
	}

	return best, found
}
