package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordguess/internal/game"
)

type styledRune struct {
	s       string
	width   int
	matched bool
}

// buildRevealRunes styles each secret position for guess using game.Compare,
// the same comparison behind the console reveal.
func buildRevealRunes(secret, guess string, mask rune) []styledRune {
	cells := game.Compare(secret, guess)
	out := make([]styledRune, 0, len(cells))
	for _, cell := range cells {
		if cell.Matched {
			out = append(out, styledRune{
				s:       matchedStyle.Render(cell.Text),
				width:   runewidth.StringWidth(cell.Text),
				matched: true,
			})
			continue
		}
		out = append(out, styledRune{
			s:     maskedStyle.Render(string(mask)),
			width: runewidth.RuneWidth(mask),
		})
	}
	return out
}

// cellWidth is the widest cell any position of secret can occupy, so rows for
// different guesses line up column by column.
func cellWidth(secret string, mask rune) int {
	width := runewidth.RuneWidth(mask)
	for _, cell := range game.Compare(secret, "") {
		if w := runewidth.StringWidth(cell.Text); w > width {
			width = w
		}
	}
	if width < 1 {
		width = 1
	}
	return width
}

func renderCells(runes []styledRune, cell int) string {
	var b strings.Builder
	for i, item := range runes {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(item.s)
		if pad := cell - item.width; pad > 0 {
			b.WriteString(strings.Repeat(" ", pad))
		}
	}
	return b.String()
}

func matchedCount(runes []styledRune) int {
	count := 0
	for _, item := range runes {
		if item.matched {
			count++
		}
	}
	return count
}
