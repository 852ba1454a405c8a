package main

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/hints"
)

// renderRow draws a scored row: [X] matched, (X) misplaced, ' X ' absent.
func renderRow(row game.Row) string {
	cells := make([]string, len(row))
	for i, s := range row {
		cells[i] = keyCell(s.Char, hints.FromOutcome(s.Outcome))
	}
	return strings.Join(cells, " ")
}

// keyCell draws one letter in the style of its key state.
func keyCell(c rune, k hints.KeyState) string {
	switch k {
	case hints.Matched:
		return fmt.Sprintf("[%c]", c)
	case hints.Misplaced:
		return fmt.Sprintf("(%c)", c)
	case hints.Absent:
		return fmt.Sprintf(" %c ", c)
	}
	return fmt.Sprintf("%c", c)
}

// renderBoard lists known letters by state.
func renderBoard(b *hints.Board) string {
	return fmt.Sprintf("matched: %s  misplaced: %s  absent: %s",
		letters(b.Letters(hints.Matched)),
		letters(b.Letters(hints.Misplaced)),
		letters(b.Letters(hints.Absent)))
}

func letters(rs []rune) string {
	if len(rs) == 0 {
		return "-"
	}
	return string(rs)
}

// endGame returns the banner title and message for a finished puzzle,
// based only on the guesses used and the budget. A win on the second to last
// guess is "Just in time", ahead of the count-based messages.
func endGame(state game.Lifecycle, used, max int) (title, msg string) {
	switch state {
	case game.Found:
		title = "Congratulations!"
		switch {
		case used == max-1:
			msg = "Just in time"
		case used == 1:
			msg = "Incredible"
		case used == 2:
			msg = "Fantastic"
		case used == 3:
			msg = "Great job"
		default:
			msg = "Good job"
		}
	case game.OutOfGuesses:
		title, msg = "Out of guesses!", "Better luck next time"
	case game.Guessing:
		panic("endGame called while guessing")
	}
	return title, msg
}

// progressLabel is "n/total", or "All done!" once every word has been played.
func progressLabel(done, total int) string {
	if done >= total {
		return "All done!"
	}
	return fmt.Sprintf("%d/%d", done, total)
}
