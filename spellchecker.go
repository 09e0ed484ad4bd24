package main

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"go_spellcheck_server/config"
	"go_spellcheck_server/dictionary"
	"go_spellcheck_server/trie"
)

var ErrPrefixTooShort = errors.New("prefix too short")

func NewSpellchecker(cfg *config.Config) *Spellchecker {
	return &Spellchecker{
		Trie:        trie.NewTrie(),
		TrieLock:    &sync.RWMutex{},
		Clients:     make(map[*WSClient]bool),
		ClientsLock: &sync.RWMutex{},
		Config:      cfg,
	}
}

// Reload replaces the trie with the contents of the word list at path. The
// current trie is kept when the file cannot be loaded.
func (s *Spellchecker) Reload(path string) (int, error) {
	next := trie.NewTrie()
	n, err := dictionary.LoadFile(path, next)
	if err != nil {
		return n, err
	}

	s.TrieLock.Lock()
	s.Trie = next
	s.TrieLock.Unlock()

	log.Info().Str("path", path).Int("words", n).Msg("dictionary loaded")
	return n, nil
}

func (s *Spellchecker) IsWord(word string) bool {
	s.TrieLock.RLock()
	defer s.TrieLock.RUnlock()

	ok, err := s.Trie.IsWord(dictionary.Normalize(word))
	return err == nil && ok
}

// Search returns the highest weighted words starting with prefix, at most
// search.limit of them.
func (s *Spellchecker) Search(prefix string) ([]RankedWord, error) {
	prefix = dictionary.Normalize(prefix)
	if utf8.RuneCountInString(prefix) < s.Config.Search.MinPrefix {
		return nil, fmt.Errorf("%w: need at least %d letters", ErrPrefixTooShort, s.Config.Search.MinPrefix)
	}

	s.TrieLock.RLock()
	words, err := s.Trie.Search(prefix)
	s.TrieLock.RUnlock()
	if err != nil {
		return nil, err
	}

	return rankWords(words, s.Config.Search.Limit), nil
}

// AllWords returns every stored word sorted alphabetically.
func (s *Spellchecker) AllWords() []RankedWord {
	s.TrieLock.RLock()
	words := s.Trie.Words()
	s.TrieLock.RUnlock()

	return sortedWords(words)
}

func (s *Spellchecker) Len() int {
	s.TrieLock.RLock()
	defer s.TrieLock.RUnlock()
	return s.Trie.Len()
}

func (s *Spellchecker) Insert(word string, weight float64) error {
	word = dictionary.Normalize(word)

	s.TrieLock.Lock()
	err := s.Trie.Insert(word, weight)
	s.TrieLock.Unlock()
	if err != nil {
		return err
	}

	event := WordEvent{Op: "insert", Word: word, Weight: weight}
	broadcastEvent("inserted", event, s)
	sendEvent(s.KafkaWriter, event)
	return nil
}

func (s *Spellchecker) Remove(word string) error {
	word = dictionary.Normalize(word)

	s.TrieLock.Lock()
	err := s.Trie.Remove(word)
	s.TrieLock.Unlock()
	if err != nil {
		return err
	}

	event := WordEvent{Op: "remove", Word: word}
	broadcastEvent("removed", event, s)
	sendEvent(s.KafkaWriter, event)
	return nil
}
