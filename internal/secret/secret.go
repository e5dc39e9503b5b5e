// Package secret picks the secret word for a game.
package secret

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNoWords is returned when there is nothing to select from.
var ErrNoWords = errors.New("no words to select from")

// Selector picks words from a list using a random source.
type Selector struct {
	rnd *rand.Rand
}

// New returns a Selector seeded with the current time.
func New() *Selector {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a Selector with a deterministic source.
func NewWithSeed(seed int64) *Selector {
	return &Selector{rnd: rand.New(rand.NewSource(seed))}
}

// Index returns a uniformly distributed index in [0, n).
func (s *Selector) Index(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoWords
	}
	return s.rnd.Int() % n, nil
}

// Pick returns a random entry of words.
func (s *Selector) Pick(words []string) (string, error) {
	idx, err := s.Index(len(words))
	if err != nil {
		return "", err
	}
	return words[idx], nil
}
