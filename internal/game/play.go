package game

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Console texts.
const (
	Banner               = "Welcome to Guess a Word"
	SecretPrefix         = "Your secret word is: "
	Prompt               = "Guess now  (To stop the program, enter #) : "
	CorrectMessage       = "Congrats! You have guessed it correctly"
	AbortedMessagePrefix = "Unfortunately you did not guess it correctly. The secret word is: "
)

// Play runs the console loop for sess, reading one guess per line from in.
// When input ends or fails the session is aborted; a read failure other than
// end of input is also returned so the caller can report it.
func Play(in io.Reader, out io.Writer, sess *Session) (Outcome, error) {
	if _, err := fmt.Fprintf(out, "%s%s\n%s\n", SecretPrefix, sess.Hidden(), Prompt); err != nil {
		return sess.Outcome(), fmt.Errorf("failed to write output: %w", err)
	}

	reader := bufio.NewReader(in)
	var readErr error
	for !sess.Finished() {
		line, ok, err := readLine(reader)
		if !ok {
			readErr = err
			sess.Abort()
			break
		}
		step := sess.Guess(line)
		if step.Outcome != Guessing {
			break
		}
		if _, err := fmt.Fprintln(out, step.Reveal); err != nil {
			return sess.Outcome(), fmt.Errorf("failed to write output: %w", err)
		}
	}

	if _, err := fmt.Fprintln(out, sess.FinalMessage()); err != nil {
		return sess.Outcome(), fmt.Errorf("failed to write output: %w", err)
	}
	if readErr != nil {
		return sess.Outcome(), fmt.Errorf("failed to read guess: %w", readErr)
	}
	return sess.Outcome(), nil
}

// readLine returns the next line without its line ending. Lines have no length
// limit. ok is false once input is exhausted or fails; err is nil at end of input.
func readLine(r *bufio.Reader) (line string, ok bool, err error) {
	line, err = r.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", false, err
		}
		if line == "" {
			return "", false, nil
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}
