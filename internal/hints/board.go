// internal/hints/board.go
//
// Per-letter knowledge accumulated over a puzzle, as shown on an on-screen
// keyboard. A letter only ever moves up: Unknown → Absent → Misplaced → Matched.
package hints

import (
	"fmt"
	"sort"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
)

// KeyState is what is known about one letter.
type KeyState int

const (
	Unknown KeyState = iota
	Absent
	Misplaced
	Matched
)

func (k KeyState) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Absent:
		return "absent"
	case Misplaced:
		return "misplaced"
	case Matched:
		return "matched"
	}
	return fmt.Sprintf("KeyState(%d)", int(k))
}

// Board holds the best known state for each letter. The zero value is ready to use.
type Board struct {
	keys map[rune]KeyState
}

// Apply folds one guess summary into the board.
func (b *Board) Apply(sum game.Summary) {
	for _, c := range sum.Matched {
		b.raise(c, Matched)
	}
	for _, c := range sum.Misplaced {
		b.raise(c, Misplaced)
	}
	for _, c := range sum.Absent {
		b.raise(c, Absent)
	}
}

func (b *Board) raise(c rune, to KeyState) {
	if b.keys == nil {
		b.keys = make(map[rune]KeyState)
	}
	if to > b.keys[c] {
		b.keys[c] = to
	}
}

// State returns what is known about c.
func (b *Board) State(c rune) KeyState {
	return b.keys[c]
}

// Letters returns the letters currently in state k, sorted.
// Unknown is answered over A–Z.
func (b *Board) Letters(k KeyState) []rune {
	var out []rune
	if k == Unknown {
		for c := 'A'; c <= 'Z'; c++ {
			if b.keys[c] == Unknown {
				out = append(out, c)
			}
		}
		return out
	}
	for c, s := range b.keys {
		if s == k {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// FromOutcome maps a slot outcome to the key state it implies.
func FromOutcome(o game.Outcome) KeyState {
	switch o {
	case game.Matched:
		return Matched
	case game.Misplaced:
		return Misplaced
	case game.Absent:
		return Absent
	}
	panic(fmt.Sprintf("hints: unknown outcome %d", int(o)))
}
