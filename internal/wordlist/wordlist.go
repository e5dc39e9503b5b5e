// Package wordlist loads word lists from files.
package wordlist

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// DefaultMaxWords caps how many lines are read from a word list.
const DefaultMaxWords = 100

// LoadWords reads up to max words, one per line, from the provided file path.
// Blank lines are skipped and do not count toward max. A file with no words
// yields an empty slice and no error; callers must check the count before
// selecting from it.
func LoadWords(path string, max int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()
	return ReadWords(file, max)
}

// ReadWords reads up to max words, one per line, from r. Lines have no length limit.
func ReadWords(r io.Reader, max int) ([]string, error) {
	if max <= 0 {
		max = DefaultMaxWords
	}
	words := []string{}
	reader := bufio.NewReader(r)
	for len(words) < max {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
		if strings.TrimSpace(line) != "" {
			words = append(words, line)
		}
		if err != nil {
			break
		}
	}
	return words, nil
}
