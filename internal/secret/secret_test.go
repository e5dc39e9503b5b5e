package secret

import (
	"errors"
	"testing"
)

func TestPickReturnsListEntry(t *testing.T) {
	words := []string{"cat", "dog", "bird"}
	sel := NewWithSeed(42)
	seen := map[string]bool{}
	for i := 0; i < 200; i++ {
		word, err := sel.Pick(words)
		if err != nil {
			t.Fatalf("pick: %v", err)
		}
		found := false
		for _, w := range words {
			if w == word {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("picked %q which is not in the list", word)
		}
		seen[word] = true
	}
	if len(seen) != len(words) {
		t.Fatalf("expected every word to be picked eventually, saw %v", seen)
	}
}

func TestIndexInRange(t *testing.T) {
	sel := New()
	for n := 1; n <= 100; n++ {
		idx, err := sel.Index(n)
		if err != nil {
			t.Fatalf("index(%d): %v", n, err)
		}
		if idx < 0 || idx >= n {
			t.Fatalf("index(%d) out of range: %d", n, idx)
		}
	}
}

func TestSeededSelectorIsDeterministic(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e", "f"}
	a, b := NewWithSeed(7), NewWithSeed(7)
	for i := 0; i < 20; i++ {
		wa, _ := a.Pick(words)
		wb, _ := b.Pick(words)
		if wa != wb {
			t.Fatalf("expected identical picks at step %d, got %q and %q", i, wa, wb)
		}
	}
}

func TestPickRejectsEmptyList(t *testing.T) {
	sel := NewWithSeed(1)
	if _, err := sel.Pick(nil); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords, got %v", err)
	}
	if _, err := sel.Index(0); !errors.Is(err, ErrNoWords) {
		t.Fatalf("expected ErrNoWords for n=0, got %v", err)
	}
}
