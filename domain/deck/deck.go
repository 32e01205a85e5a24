// Package deck builds ordered decks and the shuffles used to deal them.
package deck

// ShuffleFunc returns a permutation of cards. Implementations must not
// modify the input slice.
type ShuffleFunc func(cards []int) []int

// Ordered returns the values 0..n-1 in order.
func Ordered(n int) []int {
	cards := make([]int, n)
	for i := range cards {
		cards[i] = i
	}
	return cards
}

// IsPermutation reports whether cards holds each value of 0..n-1 exactly once.
func IsPermutation(cards []int, n int) bool {
	if len(cards) != n {
		return false
	}
	seen := make([]bool, n)
	for _, c := range cards {
		if c < 0 || c >= n || seen[c] {
			return false
		}
		seen[c] = true
	}
	return true
}

// apply reorders cards by perm, where perm[i] is the source index of the
// card that ends up at position i.
func apply(cards []int, perm []int) []int {
	out := make([]int, len(cards))
	for i, p := range perm {
		out[i] = cards[p]
	}
	return out
}
