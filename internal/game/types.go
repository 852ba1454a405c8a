// internal/game/types.go
//
// Core type definitions for the puzzle engine.
// Defines:
//   - Outcome: per-letter result of a scored guess.
//   - Lifecycle: the engine's overall phase.
//   - ScoredLetter / Row: one scored guess.
//   - Summary: per-outcome letter lists produced by each successful submit.
package game

import (
	"fmt"
	"strings"
)

// Outcome is the evaluation result for a single slot of a guess.
type Outcome int

const (
	// Absent: letter not in the secret, or every occurrence is already
	// accounted for by exact matches elsewhere in the row.
	Absent Outcome = iota
	// Misplaced: letter is in the secret at a different position.
	Misplaced
	// Matched: correct letter in the correct position.
	Matched
)

func (o Outcome) String() string {
	switch o {
	case Absent:
		return "absent"
	case Misplaced:
		return "misplaced"
	case Matched:
		return "matched"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Lifecycle is the phase of a puzzle. Found and OutOfGuesses are terminal.
type Lifecycle int

const (
	Guessing Lifecycle = iota
	Found
	OutOfGuesses
)

func (l Lifecycle) String() string {
	switch l {
	case Guessing:
		return "guessing"
	case Found:
		return "found"
	case OutOfGuesses:
		return "out_of_guesses"
	}
	return fmt.Sprintf("Lifecycle(%d)", int(l))
}

// Terminal reports whether no further input is accepted.
func (l Lifecycle) Terminal() bool {
	switch l {
	case Found, OutOfGuesses:
		return true
	case Guessing:
		return false
	}
	panic(fmt.Sprintf("game: unknown lifecycle %d", int(l)))
}

// ScoredLetter pairs a guessed character with its outcome.
type ScoredLetter struct {
	Char    rune
	Outcome Outcome
}

// Row is one scored guess, position-significant, length == word size.
type Row []ScoredLetter

// Word returns the guessed word of the row.
func (r Row) Word() string {
	var b strings.Builder
	for _, s := range r {
		b.WriteRune(s.Char)
	}
	return b.String()
}

// AllMatched reports whether every slot is Matched.
func (r Row) AllMatched() bool {
	for _, s := range r {
		if s.Outcome != Matched {
			return false
		}
	}
	return len(r) > 0
}

// Summary partitions the letters of a scored guess by outcome, one entry
// per occurrence in row order. len(Matched)+len(Misplaced)+len(Absent) is
// always the word size.
//
// A letter may land in more than one list (e.g. one O matched, another O
// absent). Consumers that keep per-letter state across guesses must prefer
// Matched over Misplaced over Absent.
type Summary struct {
	Word      string
	Matched   []rune
	Misplaced []rune
	Absent    []rune
}
