// assets/embed.go
//
// Embedded word lists, one file per supported word size.
// Lines are trimmed; blank lines and '#' comments are skipped. Entries are
// not normalised so that integrity checks see the data as shipped.
package assets

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"strings"
)

//go:embed four.txt five.txt six.txt seven.txt
var FS embed.FS

// files maps a word size to its embedded list.
var files = map[int]string{
	4: "four.txt",
	5: "five.txt",
	6: "six.txt",
	7: "seven.txt",
}

// Sizes returns the word sizes that have an embedded list, ascending.
func Sizes() []int {
	return []int{4, 5, 6, 7}
}

// WordList returns the embedded list for size, in file order.
func WordList(size int) ([]string, error) {
	name, ok := files[size]
	if !ok {
		return nil, fmt.Errorf("assets: no word list for size %d", size)
	}
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadLines(f)
}

// ReadLines parses a word file from r.
func ReadLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, s)
	}
	return out, sc.Err()
}
