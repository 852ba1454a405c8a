// internal/words/words.go
//
// Word source for the puzzle engine.
//
// Responsibilities:
//   - Load one list per supported word size (4–7) from embedded assets, or
//     from WORDS_DIR/<size>.txt when that file exists.
//   - Verify list integrity once at load time (see Validate).
//   - Expose each list as an immutable *List: membership test, indexed
//     access in stable file order, and uniform random choice.
//
// Lists are built once (sync.Once) and never mutated afterwards, so they can
// be shared across goroutines without locking.
package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/robalobadob/wordle/apps/go-engine/assets"
)

var (
	// ErrUnsupportedSize is returned when no list is configured for a size.
	ErrUnsupportedSize = errors.New("words: unsupported word size")
	// ErrIndexOutOfRange is returned by indexed selection past the list end.
	ErrIndexOutOfRange = errors.New("words: index out of range")
)

// List is the immutable set of legal words of one size.
type List struct {
	size  int
	words []string            // stable, file order
	set   map[string]struct{} // membership
}

var (
	initOnce   sync.Once
	lists      map[int]*List
	initialErr error
)

// Init loads and validates every word list exactly once.
// WORDS_DIR, when set, is consulted for per-size overrides named "<size>.txt".
func Init() error {
	return InitDir(os.Getenv("WORDS_DIR"))
}

// InitDir is Init with an explicit override directory ("" for none).
// Only the first call of Init/InitDir has any effect.
func InitDir(dir string) error {
	initOnce.Do(func() {
		lists, initialErr = load(dir)
	})
	return initialErr
}

func load(dir string) (map[int]*List, error) {
	out := make(map[int]*List, len(assets.Sizes()))
	for _, size := range assets.Sizes() {
		ws, err := readList(dir, size)
		if err != nil {
			return nil, err
		}
		l, err := NewList(size, ws)
		if err != nil {
			return nil, err
		}
		out[size] = l
	}
	return out, nil
}

// readList prefers dir/<size>.txt and falls back to the embedded list.
func readList(dir string, size int) ([]string, error) {
	if dir != "" {
		path := filepath.Join(dir, strconv.Itoa(size)+".txt")
		f, err := os.Open(path)
		switch {
		case err == nil:
			defer f.Close()
			ws, err := assets.ReadLines(f)
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", path, err)
			}
			return ws, nil
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
	}
	return assets.WordList(size)
}

// NewList validates ws and builds a List of the given size.
func NewList(size int, ws []string) (*List, error) {
	if err := Validate(size, ws); err != nil {
		return nil, err
	}
	l := &List{
		size:  size,
		words: append([]string(nil), ws...),
		set:   make(map[string]struct{}, len(ws)),
	}
	for _, w := range ws {
		l.set[w] = struct{}{}
	}
	return l, nil
}

// ForSize returns the list for size, loading the lists on first use.
func ForSize(size int) (*List, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	l, ok := lists[size]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedSize, size)
	}
	return l, nil
}

// MustForSize is ForSize for callers that treat a bad size as a bug.
func MustForSize(size int) *List {
	l, err := ForSize(size)
	if err != nil {
		panic(err)
	}
	return l
}

// Sizes returns the supported word sizes, ascending.
func Sizes() []int { return assets.Sizes() }

// Size is the length of every word in the list.
func (l *List) Size() int { return l.size }

// Len is the number of words in the list.
func (l *List) Len() int { return len(l.words) }

// Contains reports whether w is a legal word of this size.
func (l *List) Contains(w string) bool {
	_, ok := l.set[w]
	return ok
}

// At returns the i-th word in stable order.
func (l *List) At(i int) (string, error) {
	if i < 0 || i >= len(l.words) {
		return "", fmt.Errorf("%w: %d not in [0,%d) for size %d", ErrIndexOutOfRange, i, len(l.words), l.size)
	}
	return l.words[i], nil
}

// Random returns a uniformly chosen word using crypto/rand.
func (l *List) Random() string {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(len(l.words))))
	if err != nil {
		// crypto/rand failing is not recoverable in any useful way here
		panic(fmt.Sprintf("words: random: %v", err))
	}
	return l.words[nBig.Int64()]
}

// Words returns a copy of the list in stable order.
func (l *List) Words() []string {
	return append([]string(nil), l.words...)
}
