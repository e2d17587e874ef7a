package config

import "time"

// Dictionary configures the word source.
type Dictionary struct {
	Path      string `yaml:"path"`
	MinLength int    `yaml:"min_length"`
}

// Display configures how the board is drawn.
type Display struct {
	DwellMS     int  `yaml:"dwell_ms"`
	ClearScreen bool `yaml:"clear_screen"`
	SortLetters bool `yaml:"sort_letters"`
	Color       bool `yaml:"color"`
}

// Dwell returns the pause after each guess.
func (d Display) Dwell() time.Duration {
	return time.Duration(d.DwellMS) * time.Millisecond
}

// Log configures diagnostic logging.
type Log struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Config represents the .spellbee/config.yaml file.
type Config struct {
	Dictionary Dictionary `yaml:"dictionary"`
	Display    Display    `yaml:"display"`
	Log        Log        `yaml:"log"`
}
