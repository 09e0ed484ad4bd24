package trie

import "errors"

var (
	// ErrNotFound is returned when a word or prefix path does not exist, or exists
	// only as a non-terminal segment of longer words.
	ErrNotFound = errors.New("trie: word not found")

	// ErrEmptyWord is returned when inserting the empty word.
	ErrEmptyWord = errors.New("trie: empty word")
)
