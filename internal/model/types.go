// Package model defines shared data structures.
package model

// Config defines game settings after flags and the config file are merged.
type Config struct {
	WordsFile string
	MaxWords  int
	Mask      string
	Seed      int64
	TUI       bool
}

// MaskRune returns the mask character. Config is expected to be validated.
func (c Config) MaskRune() rune {
	for _, r := range c.Mask {
		return r
	}
	return '*'
}
