package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robalobadob/wordle/apps/go-engine/internal/game"
	"github.com/robalobadob/wordle/apps/go-engine/internal/hints"
)

const quitCommand = ":q"

var upper = cases.Upper(language.Und)

// play runs a puzzle against line-based input until it ends, the input is
// exhausted or the player quits. Each line is a run of keys: letters are
// typed, '-' deletes the last letter, and the end of the line submits.
func play(in io.Reader, out io.Writer, p *game.Puzzle) game.Lifecycle {
	var board hints.Board
	fmt.Fprintf(out, "Guess the %d-letter word. You have %d tries.\n", p.Size(), p.MaxGuesses())

	sc := bufio.NewScanner(in)
	for p.State() == game.Guessing && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == quitCommand {
			break
		}
		pressKeys(p, line)

		sum, err := p.Submit()
		switch {
		case errors.Is(err, game.ErrIllegalWord):
			log.Debug().Str("word", p.Buffer()).Msg("rejected guess")
			fmt.Fprintf(out, "Unknown word: %s\n", p.Buffer())
		case err != nil:
			fmt.Fprintf(out, "error: %v\n", err)
		case sum == nil:
			fmt.Fprintf(out, "%s (%d/%d letters)\n", p.Buffer(), len(p.Buffer()), p.Size())
		default:
			board.Apply(*sum)
			rows := p.History()
			fmt.Fprintf(out, "%d/%d %s\n", len(rows), p.MaxGuesses(), renderRow(rows[len(rows)-1]))
			fmt.Fprintln(out, renderBoard(&board))
		}
	}

	if p.State().Terminal() {
		title, msg := endGame(p.State(), p.GuessesUsed(), p.MaxGuesses())
		fmt.Fprintln(out, title)
		fmt.Fprintln(out, msg)
		if p.State() == game.OutOfGuesses {
			ans, _ := p.Answer()
			fmt.Fprintf(out, "The word was %s\n", ans)
		}
	}
	return p.State()
}

// pressKeys feeds one line of keys to the puzzle. Characters that are not
// letters or '-' are ignored.
func pressKeys(p *game.Puzzle, line string) {
	for _, r := range upper.String(line) {
		switch {
		case r >= 'A' && r <= 'Z':
			p.AppendLetter(r)
		case r == '-':
			p.RemoveLastLetter()
		}
	}
}
