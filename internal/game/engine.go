// internal/game/engine.go
//
// Guess engine for a single puzzle.
// Responsibilities:
//   - Own the secret word, the in-progress guess buffer and the scored history.
//   - Accept buffer edits (append / remove last) while guessing.
//   - Validate and score submitted guesses, then move guessing → found/out of guesses.
//
// Notes:
//   - The guess budget is one more than the word size.
//   - Buffer edits that cannot apply are no-ops reported as false, and a
//     submit that cannot apply returns (nil, nil). Only an unknown word is an error.
//   - A Puzzle is not safe for concurrent use; serialize calls per instance.
package game

import (
	"errors"
	"fmt"

	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// ErrIllegalWord is returned by Submit when the full buffer is not in the dictionary.
var ErrIllegalWord = errors.New("not a word")

// Dictionary is the legality check for guesses of one size.
// *words.List satisfies it.
type Dictionary interface {
	Size() int
	Contains(word string) bool
}

// Puzzle is the state of one game.
type Puzzle struct {
	dict    Dictionary
	size    int
	secret  string
	max     int
	history []Row
	buffer  []rune
	state   Lifecycle
}

// NewPuzzle picks a secret of the given size with sel and starts a puzzle
// checked against the built-in word list for that size.
func NewPuzzle(size int, sel words.Selector) (*Puzzle, error) {
	list, err := words.ForSize(size)
	if err != nil {
		return nil, err
	}
	secret, err := sel.Pick(list)
	if err != nil {
		return nil, err
	}
	return New(list, secret)
}

// New starts a puzzle for secret. The secret must be dict.Size() letters, A–Z.
// It does not have to be in dict.
func New(dict Dictionary, secret string) (*Puzzle, error) {
	size := dict.Size()
	if len(secret) != size || !words.IsUpperAlpha(secret) {
		return nil, fmt.Errorf("game: secret %q is not %d letters A-Z", secret, size)
	}
	return &Puzzle{
		dict:   dict,
		size:   size,
		secret: secret,
		max:    size + 1,
		buffer: make([]rune, 0, size),
		state:  Guessing,
	}, nil
}

// AppendLetter adds ch to the guess buffer and reports whether it did.
// It is a no-op once the puzzle is over or the buffer is full.
// ch must be an uppercase letter A–Z; anything else is a caller bug and panics.
func (p *Puzzle) AppendLetter(ch rune) bool {
	if ch < 'A' || ch > 'Z' {
		panic(fmt.Sprintf("game: AppendLetter(%q): uppercase A-Z only", ch))
	}
	if p.state != Guessing || len(p.buffer) >= p.size {
		return false
	}
	p.buffer = append(p.buffer, ch)
	return true
}

// RemoveLastLetter drops the last buffered letter and reports whether it did.
func (p *Puzzle) RemoveLastLetter() bool {
	if p.state != Guessing || len(p.buffer) == 0 {
		return false
	}
	p.buffer = p.buffer[:len(p.buffer)-1]
	return true
}

// Submit scores the buffered guess.
//
// Returns:
//   - (nil, nil) when nothing happened: the puzzle is over or the buffer is not full.
//   - ErrIllegalWord when the word is unknown; buffer, history and state are untouched.
//   - the Summary of the new row otherwise. The buffer is cleared and the state
//     becomes Found (all matched), OutOfGuesses (budget used) or stays Guessing.
func (p *Puzzle) Submit() (*Summary, error) {
	if p.state != Guessing || len(p.buffer) != p.size {
		return nil, nil
	}
	guess := string(p.buffer)
	if !p.dict.Contains(guess) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalWord, guess)
	}

	row := Score(p.secret, guess)
	p.history = append(p.history, row)
	p.buffer = p.buffer[:0]

	switch {
	case row.AllMatched():
		p.state = Found
	case len(p.history) >= p.max:
		p.state = OutOfGuesses
	}

	sum := Summarize(row)
	return &sum, nil
}

// State returns the lifecycle state.
func (p *Puzzle) State() Lifecycle { return p.state }

// Size is the word length.
func (p *Puzzle) Size() int { return p.size }

// MaxGuesses is the guess budget (Size()+1).
func (p *Puzzle) MaxGuesses() int { return p.max }

// GuessesUsed is the number of scored rows.
func (p *Puzzle) GuessesUsed() int { return len(p.history) }

// Buffer returns the in-progress guess.
func (p *Puzzle) Buffer() string { return string(p.buffer) }

// History returns a copy of the scored rows, oldest first.
func (p *Puzzle) History() []Row {
	out := make([]Row, len(p.history))
	for i, r := range p.history {
		out[i] = append(Row(nil), r...)
	}
	return out
}

// Answer reveals the secret once the puzzle is over.
func (p *Puzzle) Answer() (string, bool) {
	if !p.state.Terminal() {
		return "", false
	}
	return p.secret, true
}
