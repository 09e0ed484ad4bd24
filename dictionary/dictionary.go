// Package dictionary loads word/weight lists into a trie.
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"go_spellcheck_server/trie"
)

var (
	// ErrMalformedRecord is returned for a line that is not "<word> <weight>".
	ErrMalformedRecord = errors.New("dictionary: malformed record")

	// ErrInvalidWeight is returned for a missing, non-numeric or non-finite weight.
	ErrInvalidWeight = errors.New("dictionary: invalid weight")
)

// Normalize trims and lower-cases a word the way all input is stored.
func Normalize(word string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(word))
}

// ParseWeight accepts a weight given as a number or as text. The weight must
// be present and finite.
func ParseWeight(v interface{}) (float64, error) {
	switch v.(type) {
	case nil:
		return 0, fmt.Errorf("%w: missing", ErrInvalidWeight)
	case bool:
		return 0, fmt.Errorf("%w: %v", ErrInvalidWeight, v)
	}

	w, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %v: %v", ErrInvalidWeight, v, err)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidWeight, v)
	}
	return w, nil
}

// Load reads one "<word> <weight>" record per line from r and inserts each
// into t. Blank lines are skipped. It returns the number of records loaded.
func Load(r io.Reader, t *trie.Trie) (int, error) {
	scanner := bufio.NewScanner(r)
	n := 0
	line := 0

	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 2 {
			return n, fmt.Errorf("line %d: %w", line, ErrMalformedRecord)
		}

		weight, err := ParseWeight(fields[1])
		if err != nil {
			return n, fmt.Errorf("line %d: %w: %v", line, ErrMalformedRecord, err)
		}

		if err := t.Insert(Normalize(fields[0]), weight); err != nil {
			return n, fmt.Errorf("line %d: %w", line, err)
		}
		n++
	}

	if err := scanner.Err(); err != nil {
		return n, fmt.Errorf("read dictionary: %w", err)
	}
	return n, nil
}

// LoadFile opens path and loads it into t.
func LoadFile(path string, t *trie.Trie) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	n, err := Load(f, t)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}
