// internal/words/selector.go
//
// Secret-word selectors.
//   - Index:  deterministic, resumable (caller owns the sequence).
//   - Random: uniform choice.
//   - Daily:  same word for everyone on a given UTC date.
package words

import (
	"time"

	"github.com/robalobadob/wordle/apps/go-engine/internal/daily"
)

// Selector picks one secret word from a list.
type Selector interface {
	Pick(l *List) (string, error)
}

// Index selects the word at a zero-based position in stable order.
type Index int

// Pick implements Selector.
func (i Index) Pick(l *List) (string, error) { return l.At(int(i)) }

// Random selects a uniformly random word.
type Random struct{}

// Pick implements Selector.
func (Random) Pick(l *List) (string, error) { return l.Random(), nil }

// Daily selects a word keyed by Date (UTC day) and Salt.
type Daily struct {
	Date time.Time
	Salt string
}

// Pick implements Selector.
func (d Daily) Pick(l *List) (string, error) {
	return l.At(daily.WordIndex(d.Date, d.Salt, l.Len()))
}
