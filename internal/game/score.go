package game

import (
	"fmt"
	"strings"
)

// Score evaluates guess against secret. Both must have the same length.
//
// Pass 1 (positions):
//   - guess[i] == secret[i]          → Matched
//   - secret contains guess[i]       → Misplaced (tentative)
//   - otherwise                      → Absent
//
// Pass 2 (multiplicity): for each letter of the secret, in secret order,
// count its occurrences n in the secret and the Matched slots m holding it in
// the row as it stands now. When n == m every other slot holding that letter
// is downgraded to Absent.
//
// Example: secret SHOTS, guess LOOKS → Absent Absent Matched Absent Matched.
// The secret has one O and the second O already matches it, so the first O
// cannot be Misplaced.
func Score(secret, guess string) Row {
	s, g := []rune(secret), []rune(guess)
	if len(s) != len(g) {
		panic(fmt.Sprintf("game: score %q against %q: length mismatch", guess, secret))
	}

	row := make(Row, len(g))
	for i, c := range g {
		switch {
		case c == s[i]:
			row[i] = ScoredLetter{Char: c, Outcome: Matched}
		case strings.ContainsRune(secret, c):
			row[i] = ScoredLetter{Char: c, Outcome: Misplaced}
		default:
			row[i] = ScoredLetter{Char: c, Outcome: Absent}
		}
	}

	for _, letter := range s {
		n := strings.Count(secret, string(letter))
		m := 0
		for _, slot := range row {
			if slot.Char == letter && slot.Outcome == Matched {
				m++
			}
		}
		if n != m {
			continue
		}
		for i := range row {
			if row[i].Char == letter && row[i].Outcome != Matched {
				row[i].Outcome = Absent
			}
		}
	}
	return row
}

// Summarize builds the per-outcome letter lists for a scored row.
func Summarize(row Row) Summary {
	sum := Summary{Word: row.Word()}
	for _, slot := range row {
		switch slot.Outcome {
		case Matched:
			sum.Matched = append(sum.Matched, slot.Char)
		case Misplaced:
			sum.Misplaced = append(sum.Misplaced, slot.Char)
		case Absent:
			sum.Absent = append(sum.Absent, slot.Char)
		default:
			panic(fmt.Sprintf("game: unknown outcome %d", int(slot.Outcome)))
		}
	}
	return sum
}
