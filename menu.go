package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"go_spellcheck_server/dictionary"
	"go_spellcheck_server/trie"
)

type command int

const (
	cmdIsWord command = iota + 1
	cmdSearch
	cmdChangeFile
	cmdPrintAll
	cmdRemove
	cmdAdd
	cmdQuit
)

type menuOption struct {
	key  string
	help string
	run  func(m *Menu)
}

// Menu is the interactive text driver around a Spellchecker.
type Menu struct {
	checker *Spellchecker
	in      *bufio.Scanner
	out     io.Writer
	options map[command]menuOption
}

func NewMenu(s *Spellchecker, in io.Reader, out io.Writer) *Menu {
	m := &Menu{
		checker: s,
		in:      bufio.NewScanner(in),
		out:     out,
	}
	m.options = map[command]menuOption{
		cmdIsWord:     {key: "1", help: "Check spelling", run: (*Menu).isWord},
		cmdSearch:     {key: "2", help: "Search for words using prefix", run: (*Menu).search},
		cmdChangeFile: {key: "3", help: "Change file", run: (*Menu).changeFile},
		cmdPrintAll:   {key: "4", help: "Print all words", run: (*Menu).printAllWords},
		cmdRemove:     {key: "5", help: "Remove word", run: (*Menu).removeWord},
		cmdAdd:        {key: "6", help: "Add word", run: (*Menu).addWord},
		cmdQuit:       {key: "7", help: "Quit the program"},
	}
	return m
}

// Run shows the menu until the user quits or input ends.
func (m *Menu) Run() {
	for {
		m.printMenu()

		choice, ok := m.input("Enter menu selection:\n-> ")
		if !ok {
			return
		}

		cmd, found := m.lookup(strings.TrimSpace(choice))
		switch {
		case !found:
			fmt.Fprintln(m.out, "Invalid choice!")
		case cmd == cmdQuit:
			return
		default:
			m.options[cmd].run(m)
		}

		if _, ok := m.input("\nPress any key to continue ..."); !ok {
			return
		}
	}
}

func (m *Menu) lookup(key string) (command, bool) {
	for cmd, opt := range m.options {
		if opt.key == key {
			return cmd, true
		}
	}
	return 0, false
}

func (m *Menu) printMenu() {
	var b strings.Builder
	for cmd := cmdIsWord; cmd <= cmdQuit; cmd++ {
		opt := m.options[cmd]
		fmt.Fprintf(&b, "%s: %s\n", opt.key, opt.help)
	}
	fmt.Fprintln(m.out, b.String())
}

// input prints prompt and reads one line. It reports false at end of input.
func (m *Menu) input(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}

func (m *Menu) isWord() {
	word, ok := m.input("\nWord to check: \n>>> ")
	if !ok {
		return
	}

	if m.checker.IsWord(word) {
		fmt.Fprintln(m.out, "Correct spelling!")
	} else {
		fmt.Fprintln(m.out, "Incorrect spelling!")
	}
}

// search reads the prefix incrementally: every line extends it until the
// prefix ends in "quit".
func (m *Menu) search() {
	minPrefix := m.checker.Config.Search.MinPrefix
	fmt.Fprintf(m.out, "Enter at least %d letters at first. Then any amount of letters.\n", minPrefix)
	fmt.Fprintln(m.out, "Type 'quit' to quit")

	prefix := ""
	for {
		line, ok := m.input(fmt.Sprintf("\nEnter prefix: \n>>> %s", prefix))
		if !ok {
			return
		}
		prefix += dictionary.Normalize(line)

		if strings.HasSuffix(prefix, "quit") {
			return
		}

		words, err := m.checker.Search(prefix)
		switch {
		case errors.Is(err, ErrPrefixTooShort):
			fmt.Fprintf(m.out, "Enter at least %d letters!\n", minPrefix)
			prefix = ""
		case errors.Is(err, trie.ErrNotFound):
			fmt.Fprintf(m.out, "No words with prefix: %s\n", prefix)
			prefix = ""
		case err != nil:
			fmt.Fprintln(m.out, err)
			prefix = ""
		default:
			for _, w := range words {
				fmt.Fprintf(m.out, "%s   %.1f\n", w.Word, w.Weight)
			}
		}
	}
}

func (m *Menu) changeFile() {
	path, ok := m.input("\nEnter filename: \n>>> ")
	if !ok {
		return
	}

	n, err := m.checker.Reload(strings.TrimSpace(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		fmt.Fprintln(m.out, "File not found!")
	case err != nil:
		fmt.Fprintln(m.out, err)
	default:
		fmt.Fprintf(m.out, "Loaded %d words\n", n)
	}
}

func (m *Menu) printAllWords() {
	for _, w := range m.checker.AllWords() {
		fmt.Fprintf(m.out, "%s   %.1f\n", w.Word, w.Weight)
	}
}

func (m *Menu) removeWord() {
	word, ok := m.input("\nWord to remove: \n>>> ")
	if !ok {
		return
	}

	if err := m.checker.Remove(word); err != nil {
		fmt.Fprintln(m.out, "Word not found")
		return
	}
	fmt.Fprintln(m.out, "Word removed")
}

func (m *Menu) addWord() {
	word, ok := m.input("\nWord to add: \n>>> ")
	if !ok {
		return
	}
	text, ok := m.input("\nWeight: \n>>> ")
	if !ok {
		return
	}

	weight, err := dictionary.ParseWeight(strings.TrimSpace(text))
	if err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	if err := m.checker.Insert(word, weight); err != nil {
		fmt.Fprintln(m.out, err)
		return
	}
	fmt.Fprintln(m.out, "Word added")
}
