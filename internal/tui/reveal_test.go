package tui

import (
	"testing"

	"github.com/verte-zerg/wordguess/internal/game"
)

func TestBuildRevealRunesMatchesPositions(t *testing.T) {
	runes := buildRevealRunes("dog", "dig", '*')
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[0].s != matchedStyle.Render("d") {
		t.Fatalf("expected matched style for first rune")
	}
	if runes[1].s != maskedStyle.Render("*") {
		t.Fatalf("expected mask for second rune")
	}
	if runes[2].s != matchedStyle.Render("g") {
		t.Fatalf("expected matched style for third rune")
	}
	if matchedCount(runes) != 2 {
		t.Fatalf("expected 2 matched runes, got %d", matchedCount(runes))
	}
}

func TestBuildRevealRunesShortGuess(t *testing.T) {
	runes := buildRevealRunes("bird", "b", '*')
	if len(runes) != 4 {
		t.Fatalf("expected 4 runes, got %d", len(runes))
	}
	for i := 1; i < 4; i++ {
		if runes[i].matched {
			t.Fatalf("expected position %d to be masked", i)
		}
	}
}

func TestCellWidthAccountsForWideRunes(t *testing.T) {
	if w := cellWidth("dog", '*'); w != 1 {
		t.Fatalf("expected cell width 1, got %d", w)
	}
	if w := cellWidth("日本", '*'); w != 2 {
		t.Fatalf("expected cell width 2, got %d", w)
	}
}

func TestRenderCellsPadsNarrowRunes(t *testing.T) {
	runes := []styledRune{{s: "a", width: 1}, {s: "日", width: 2}}
	if got := renderCells(runes, 2); got != "a  日" {
		t.Fatalf("unexpected cells: %q", got)
	}
}

func TestRevealAgreesWithConsoleMask(t *testing.T) {
	cases := []struct{ secret, guess string }{
		{"dog", "dig"},
		{"dog", ""},
		{"bird", "birds"},
		{"naïve", "naive"},
		{"a\xffb", "a\xfeb"},
		{"日本語", "日x語"},
	}
	for _, tc := range cases {
		runes := buildRevealRunes(tc.secret, tc.guess, game.MaskRune)
		masked := []rune(game.Mask(tc.secret, tc.guess, game.MaskRune))
		if len(runes) != len(masked) {
			t.Fatalf("%q/%q: tui has %d cells, console has %d", tc.secret, tc.guess, len(runes), len(masked))
		}
		for i, r := range runes {
			if r.matched == (masked[i] == game.MaskRune) {
				t.Fatalf("%q/%q: position %d differs between tui and console", tc.secret, tc.guess, i)
			}
		}
	}
}
