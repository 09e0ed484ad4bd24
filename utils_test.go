package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankWords(t *testing.T) {
	words := map[string]float64{"the": 100, "then": 20, "there": 40, "these": 40, "they": 5}

	got := rankWords(words, 3)
	assert.Equal(t, []RankedWord{
		{Word: "the", Weight: 100},
		{Word: "there", Weight: 40},
		{Word: "these", Weight: 40},
	}, got)

	assert.Len(t, rankWords(words, 0), len(words))
	assert.Empty(t, rankWords(nil, 10))
}

func TestSortedWords(t *testing.T) {
	got := sortedWords(map[string]float64{"hej": 2, "daniel": 1, "danielle": 3})
	assert.Equal(t, []RankedWord{
		{Word: "daniel", Weight: 1},
		{Word: "danielle", Weight: 3},
		{Word: "hej", Weight: 2},
	}, got)
}

func TestSendEventDisabled(t *testing.T) {
	assert.NotPanics(t, func() {
		sendEvent(nil, WordEvent{Op: "insert", Word: "hej", Weight: 2})
	})
}
