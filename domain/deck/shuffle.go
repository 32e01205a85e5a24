package deck

import (
	"math/big"
	"math/rand"

	"go.dedis.ch/kyber/v4/suites"
	"go.dedis.ch/kyber/v4/util/random"
)

var suite suites.Suite = suites.MustFind("Ed25519")

// DefaultShuffle is a uniform shuffle backed by the math/rand global source.
func DefaultShuffle(cards []int) []int {
	return apply(cards, rand.Perm(len(cards)))
}

// SeededShuffle returns a deterministic shuffle. Every call of the returned
// function continues the same random sequence, so one game per shuffle is
// the reproducible use.
func SeededShuffle(seed int64) ShuffleFunc {
	rng := rand.New(rand.NewSource(seed))
	return func(cards []int) []int {
		return apply(cards, rng.Perm(len(cards)))
	}
}

// CryptoShuffle returns a Fisher-Yates shuffle whose swaps are drawn from
// the kyber suite's random stream.
func CryptoShuffle() ShuffleFunc {
	return func(cards []int) []int {
		return apply(cards, permutation(len(cards)))
	}
}

// permutation generates a uniform permutation of 0..n-1 from the suite's
// cipher stream.
func permutation(n int) []int {
	perm := Ordered(n)
	stream := suite.RandomStream()
	for i := n - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), stream).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
