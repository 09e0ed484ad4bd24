package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func runMenu(t *testing.T, s *Spellchecker, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	NewMenu(s, strings.NewReader(strings.Join(lines, "\n")+"\n"), &out).Run()
	return out.String()
}

func TestMenu_IsWord(t *testing.T) {
	s := newTestChecker(t)

	out := runMenu(t, s, "1", "HEJ", "", "1", "hejj", "", "7")
	assert.Contains(t, out, "Correct spelling!")
	assert.Contains(t, out, "Incorrect spelling!")
}

func TestMenu_Search(t *testing.T) {
	s := newTestChecker(t)

	out := runMenu(t, s, "2", "da", "dan", "iel", "xyz", "quit", "", "7")
	assert.Contains(t, out, "Enter at least 3 letters!")
	assert.Contains(t, out, "daniellina   5.0\ndanielle   3.0\n")
	assert.NotContains(t, out, "daniel   1.0")
	assert.Contains(t, out, "No words with prefix: danielxyz")
}

func TestMenu_RemoveAndAdd(t *testing.T) {
	s := newTestChecker(t)

	out := runMenu(t, s,
		"5", "danielle", "",
		"5", "danielle", "",
		"6", "hejsan", "4", "",
		"6", "hejdå", "many", "",
		"6", "nanword", "NaN", "",
		"4", "",
		"7",
	)
	assert.Contains(t, out, "Word removed")
	assert.Contains(t, out, "Word not found")
	assert.Contains(t, out, "Word added")
	assert.Contains(t, out, "invalid weight")
	assert.Contains(t, out, "daniel   1.0\ndaniellina   5.0\nhej   2.0\nhejsan   4.0\n")
	assert.False(t, s.IsWord("hejdå"))
	assert.False(t, s.IsWord("nanword"))
}

func TestMenu_ChangeFile(t *testing.T) {
	s := newTestChecker(t)
	path := writeWordList(t, "the 100\nthere 40\n")

	out := runMenu(t, s,
		"3", filepath.Join(t.TempDir(), "missing.txt"), "",
		"3", path, "",
		"7",
	)
	assert.Contains(t, out, "File not found!")
	assert.Contains(t, out, "Loaded 2 words")
	assert.True(t, s.IsWord("there"))
	assert.False(t, s.IsWord("hej"))
}

func TestMenu_InvalidChoiceAndEOF(t *testing.T) {
	s := newTestChecker(t)

	out := runMenu(t, s, "9", "")
	assert.Contains(t, out, "Invalid choice!")
	assert.Contains(t, out, "7: Quit the program")
}
