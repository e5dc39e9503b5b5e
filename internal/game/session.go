package game

import "strings"

// AbortPrefix starts a line that ends the game without a win.
const AbortPrefix = "#"

// Outcome is the state of a game session.
type Outcome int

const (
	// Guessing means the session still accepts guesses.
	Guessing Outcome = iota
	// Correct means the secret was guessed exactly.
	Correct
	// Aborted means the player quit or input ended.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Guessing:
		return "guessing"
	case Correct:
		return "correct"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Step is the result of feeding one line to a Session.
type Step struct {
	Outcome Outcome
	// Reveal is the masked comparison for a wrong guess; empty once finished.
	Reveal string
}

// Session tracks a single game against one secret word.
type Session struct {
	secret   string
	mask     rune
	outcome  Outcome
	attempts int
}

// NewSession starts a game for secret.
func NewSession(secret string, mask rune) *Session {
	return &Session{secret: secret, mask: mask}
}

// Secret returns the word being guessed.
func (s *Session) Secret() string {
	return s.secret
}

// MaskRune returns the mask character of the session.
func (s *Session) MaskRune() rune {
	return s.mask
}

// Hidden returns the fully masked secret shown at game start.
func (s *Session) Hidden() string {
	return Hidden(s.secret, s.mask)
}

// Outcome returns the current state.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Finished reports whether the session has ended.
func (s *Session) Finished() bool {
	return s.outcome != Guessing
}

// Attempts returns the number of wrong guesses so far.
func (s *Session) Attempts() int {
	return s.attempts
}

// Guess applies one input line. Only an exact, case-sensitive match of the
// whole word wins; revealing every position through separate guesses does not.
func (s *Session) Guess(line string) Step {
	if s.Finished() {
		return Step{Outcome: s.outcome}
	}
	if strings.HasPrefix(line, AbortPrefix) {
		s.outcome = Aborted
		return Step{Outcome: s.outcome}
	}
	if line == s.secret {
		s.outcome = Correct
		return Step{Outcome: s.outcome}
	}
	s.attempts++
	return Step{Outcome: Guessing, Reveal: Mask(s.secret, line, s.mask)}
}

// Abort ends the session without a win, e.g. when input is exhausted.
func (s *Session) Abort() {
	if !s.Finished() {
		s.outcome = Aborted
	}
}

// FinalMessage returns the closing line for a finished session.
func (s *Session) FinalMessage() string {
	switch s.outcome {
	case Correct:
		return CorrectMessage
	case Aborted:
		return AbortedMessagePrefix + s.secret
	default:
		return ""
	}
}
