package game

import "golang.org/x/exp/rand"

// Shuffler is the only source of randomness the engine reads. Inject a seeded
// one to make games reproducible.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// NewShuffler returns a deterministic shuffler for seed.
func NewShuffler(seed uint64) Shuffler {
	return rand.New(rand.NewSource(seed))
}

// shuffle permutes cards in place. A nil shuffler leaves the order unchanged.
func shuffle(shuffler Shuffler, cards []Chart) {
	if shuffler == nil {
		return
	}
	shuffler.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
}
