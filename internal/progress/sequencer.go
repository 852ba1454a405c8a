// internal/progress/sequencer.go
//
// Resumable "play every word once" sequencing.
// Hands out indexes 0, 1, 2, … per word size, remembering where it got to in
// a store.Store, and wraps to 0 once the list is exhausted.
package progress

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-engine/internal/store"
	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// Sequencer picks the next unplayed word index for each size.
// It is as safe for concurrent use as its store, but two concurrent Next
// calls for the same size may hand out the same index.
type Sequencer struct {
	store store.Store
}

// New returns a Sequencer persisting through st.
func New(st store.Store) *Sequencer {
	return &Sequencer{store: st}
}

// Next returns the index to play for list and advances the stored position.
// A stored position at or past the end of the list restarts from 0.
func (s *Sequencer) Next(ctx context.Context, list *words.List) (words.Index, error) {
	size := list.Size()
	idx, err := s.store.NextIndex(ctx, size)
	if err != nil {
		return 0, fmt.Errorf("progress: load size %d: %w", size, err)
	}
	if idx >= list.Len() {
		log.Info().Int("size", size).Int("words", list.Len()).Msg("all words played, starting over")
		idx = 0
	}
	if err := s.store.SaveNextIndex(ctx, size, idx+1); err != nil {
		return 0, fmt.Errorf("progress: save size %d: %w", size, err)
	}
	log.Debug().Int("size", size).Int("index", idx).Msg("next word")
	return words.Index(idx), nil
}

// Status reports how many words of list have been handed out and the total.
// done == total means every word has been played.
func (s *Sequencer) Status(ctx context.Context, list *words.List) (done, total int, err error) {
	idx, err := s.store.NextIndex(ctx, list.Size())
	if err != nil {
		return 0, 0, fmt.Errorf("progress: load size %d: %w", list.Size(), err)
	}
	total = list.Len()
	if idx > total {
		idx = total
	}
	return idx, total, nil
}
