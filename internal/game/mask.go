// Package game implements the guessing rules and the console game loop.
package game

import (
	"strings"
	"unicode/utf8"
)

// MaskRune is the default character used for hidden positions.
const MaskRune = '*'

// Cell is one position of the secret compared against a guess.
type Cell struct {
	// Text is the secret's character at this position.
	Text    string
	Matched bool
}

// Compare splits secret into characters and marks the positions where guess
// has the same character. Positions past the end of guess never match. An
// invalid UTF-8 byte is its own character and only matches the same byte.
func Compare(secret, guess string) []Cell {
	secretChars := splitChars(secret)
	guessChars := splitChars(guess)
	cells := make([]Cell, len(secretChars))
	for i, ch := range secretChars {
		cells[i] = Cell{
			Text:    ch,
			Matched: i < len(guessChars) && guessChars[i] == ch,
		}
	}
	return cells
}

// Mask compares guess against secret position by position. Matched positions
// keep the secret's character; every other position becomes mask. The result
// always has one character per character of secret.
func Mask(secret, guess string, mask rune) string {
	var b strings.Builder
	for _, cell := range Compare(secret, guess) {
		if cell.Matched {
			b.WriteString(cell.Text)
			continue
		}
		b.WriteRune(mask)
	}
	return b.String()
}

// Hidden returns secret with every position masked.
func Hidden(secret string, mask rune) string {
	return strings.Repeat(string(mask), utf8.RuneCountInString(secret))
}

func splitChars(s string) []string {
	chars := make([]string, 0, len(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		chars = append(chars, s[:size])
		s = s[size:]
	}
	return chars
}
