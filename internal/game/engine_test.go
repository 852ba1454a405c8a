package game

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/robalobadob/wordle/apps/go-engine/internal/words"
)

// dict is a fixed Dictionary for tests.
type dict struct {
	size  int
	words map[string]bool
}

func newDict(size int, ws ...string) dict {
	d := dict{size: size, words: map[string]bool{}}
	for _, w := range ws {
		d.words[w] = true
	}
	return d
}

func (d dict) Size() int { return d.size }

func (d dict) Contains(w string) bool { return d.words[w] }

func mustNew(t *testing.T, d Dictionary, secret string) *Puzzle {
	t.Helper()
	p, err := New(d, secret)
	if err != nil {
		t.Fatalf("new puzzle: %v", err)
	}
	return p
}

func typeWord(p *Puzzle, w string) {
	for _, c := range w {
		p.AppendLetter(c)
	}
}

func TestNewPuzzleInitialState(t *testing.T) {
	p, err := NewPuzzle(4, words.Index(0))
	if err != nil {
		t.Fatalf("new puzzle: %v", err)
	}
	if p.State() != Guessing {
		t.Fatalf("expected guessing, got %s", p.State())
	}
	if p.Size() != 4 || p.MaxGuesses() != 5 {
		t.Fatalf("expected size 4 / max 5, got %d / %d", p.Size(), p.MaxGuesses())
	}
	if p.Buffer() != "" || len(p.History()) != 0 || p.GuessesUsed() != 0 {
		t.Fatal("expected empty buffer and history")
	}
	if _, ok := p.Answer(); ok {
		t.Fatal("answer must stay hidden while guessing")
	}
}

func TestNewPuzzleErrors(t *testing.T) {
	if _, err := NewPuzzle(3, words.Random{}); !errors.Is(err, words.ErrUnsupportedSize) {
		t.Fatalf("expected ErrUnsupportedSize, got %v", err)
	}
	if _, err := NewPuzzle(4, words.Index(100000)); !errors.Is(err, words.ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", err)
	}
	for _, secret := range []string{"OVE", "over", "OV3R", "OVERT"} {
		if _, err := New(newDict(4), secret); err == nil {
			t.Fatalf("expected error for secret %q", secret)
		}
	}
}

func TestTyping(t *testing.T) {
	p := mustNew(t, newDict(4), "OVER")
	if !p.AppendLetter('A') {
		t.Fatal("append should apply")
	}
	if p.Buffer() != "A" {
		t.Fatalf("expected A, got %q", p.Buffer())
	}
	if !p.RemoveLastLetter() {
		t.Fatal("remove should apply")
	}
	if p.Buffer() != "" {
		t.Fatalf("expected empty buffer, got %q", p.Buffer())
	}
	if p.RemoveLastLetter() {
		t.Fatal("remove on empty buffer must be a no-op")
	}
	if p.State() != Guessing || len(p.History()) != 0 {
		t.Fatal("no-op remove changed state")
	}
}

func TestAppendBoundedBySize(t *testing.T) {
	p := mustNew(t, newDict(4), "OVER")
	for i, c := range "ABCDEFGH" {
		applied := p.AppendLetter(c)
		if applied != (i < 4) {
			t.Fatalf("append #%d: applied=%v", i, applied)
		}
		if len(p.Buffer()) > p.Size() {
			t.Fatalf("buffer grew to %d", len(p.Buffer()))
		}
	}
	if p.Buffer() != "ABCD" {
		t.Fatalf("expected ABCD, got %q", p.Buffer())
	}
}

func TestAppendRejectsNonUppercase(t *testing.T) {
	for _, c := range []rune{'a', '1', ' ', 'É'} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for %q", c)
				}
			}()
			mustNew(t, newDict(4), "OVER").AppendLetter(c)
		}()
	}
}

func TestSubmitNotReadyIsNoop(t *testing.T) {
	p := mustNew(t, newDict(4, "OVER"), "OVER")
	typeWord(p, "OVE")
	sum, err := p.Submit()
	if sum != nil || err != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", sum, err)
	}
	if p.Buffer() != "OVE" || len(p.History()) != 0 || p.State() != Guessing {
		t.Fatal("no-op submit changed state")
	}
}

func TestIllegalWordRejectedWithoutSideEffects(t *testing.T) {
	p := mustNew(t, words.MustForSize(4), "OVER")
	typeWord(p, "QQAS")
	sum, err := p.Submit()
	if !errors.Is(err, ErrIllegalWord) {
		t.Fatalf("expected ErrIllegalWord, got %v", err)
	}
	if sum != nil {
		t.Fatal("expected no summary on illegal word")
	}
	if p.Buffer() != "QQAS" {
		t.Fatalf("buffer must be kept, got %q", p.Buffer())
	}
	if len(p.History()) != 0 || p.State() != Guessing {
		t.Fatal("illegal word changed history or state")
	}
	// The player can edit and resubmit.
	for range "QQAS" {
		p.RemoveLastLetter()
	}
	typeWord(p, "BANK")
	if _, err := p.Submit(); err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if p.GuessesUsed() != 1 {
		t.Fatalf("expected 1 guess, got %d", p.GuessesUsed())
	}
}

func TestSubmitLOOKS(t *testing.T) {
	p := mustNew(t, newDict(5, "LOOKS"), "SHOTS")
	typeWord(p, "LOOKS")
	sum, err := p.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	want := Summary{Word: "LOOKS", Matched: []rune("OS"), Absent: []rune("LOK")}
	if diff := cmp.Diff(want, *sum); diff != "" {
		t.Fatalf("summary (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]Row{mkRow(t, "LOOKS", "--+-+")}, p.History()); diff != "" {
		t.Fatalf("history (-want +got):\n%s", diff)
	}
	if p.Buffer() != "" {
		t.Fatalf("buffer should be cleared, got %q", p.Buffer())
	}
	if p.State() != Guessing {
		t.Fatalf("expected guessing, got %s", p.State())
	}
}

func TestBasicPlay(t *testing.T) {
	p := mustNew(t, words.MustForSize(4), "TORT")
	typeWord(p, "OVER")
	if _, err := p.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if diff := cmp.Diff([]Row{mkRow(t, "OVER", "?--?")}, p.History()); diff != "" {
		t.Fatalf("history (-want +got):\n%s", diff)
	}
	typeWord(p, "TORT")
	if _, err := p.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if p.State() != Found {
		t.Fatalf("expected found, got %s", p.State())
	}
	if ans, ok := p.Answer(); !ok || ans != "TORT" {
		t.Fatalf("expected answer TORT, got %q %v", ans, ok)
	}
}

func TestWinOnFirstGuess(t *testing.T) {
	p := mustNew(t, words.MustForSize(4), "OVER")
	typeWord(p, "OVER")
	sum, err := p.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if p.State() != Found || p.GuessesUsed() != 1 {
		t.Fatalf("expected found after 1 guess, got %s after %d", p.State(), p.GuessesUsed())
	}
	if !p.History()[0].AllMatched() {
		t.Fatal("winning row must be all matched")
	}
	if len(sum.Matched) != 4 {
		t.Fatalf("expected 4 matched letters, got %q", string(sum.Matched))
	}
}

func TestLossAfterBudget(t *testing.T) {
	p := mustNew(t, words.MustForSize(4), "OVER")
	guesses := []string{"AQUA", "BANK", "CASH", "DOCK", "ERGO"}
	if len(guesses) != p.MaxGuesses() {
		t.Fatalf("fixture needs %d guesses", p.MaxGuesses())
	}
	for i, g := range guesses {
		typeWord(p, g)
		if _, err := p.Submit(); err != nil {
			t.Fatalf("guess %s: %v", g, err)
		}
		want := Guessing
		if i == len(guesses)-1 {
			want = OutOfGuesses
		}
		if p.State() != want {
			t.Fatalf("after guess %d: expected %s, got %s", i+1, want, p.State())
		}
	}
	for _, r := range p.History() {
		if r.AllMatched() {
			t.Fatal("no row may be all matched on a loss")
		}
	}
	if ans, ok := p.Answer(); !ok || ans != "OVER" {
		t.Fatalf("expected answer OVER, got %q %v", ans, ok)
	}
}

func TestTerminalStateIsFrozen(t *testing.T) {
	p := mustNew(t, words.MustForSize(4), "OVER")
	typeWord(p, "OVER")
	if _, err := p.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	before := p.History()

	if p.AppendLetter('A') {
		t.Fatal("append after win must be a no-op")
	}
	if p.RemoveLastLetter() {
		t.Fatal("remove after win must be a no-op")
	}
	sum, err := p.Submit()
	if sum != nil || err != nil {
		t.Fatalf("expected (nil, nil), got (%v, %v)", sum, err)
	}
	if p.Buffer() != "" || p.State() != Found {
		t.Fatal("terminal puzzle changed")
	}
	if diff := cmp.Diff(before, p.History()); diff != "" {
		t.Fatalf("history changed (-before +after):\n%s", diff)
	}
}

func TestHistoryIsACopy(t *testing.T) {
	p := mustNew(t, words.MustForSize(4), "OVER")
	typeWord(p, "BANK")
	if _, err := p.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	h := p.History()
	h[0][0].Outcome = Matched
	if p.History()[0][0].Outcome != Absent {
		t.Fatal("History must not expose internal rows")
	}
}
