package trie

import "unicode/utf8"

// Trie represents the trie data structure. It is not safe for concurrent use;
// callers sharing a Trie must guard it with their own lock.
type Trie struct {
	root *Node
	size int
}

// NewTrie creates and returns a new Trie
func NewTrie() *Trie {
	return &Trie{
		root: &Node{children: make(map[rune]*Node)},
	}
}

// Root returns the root node. Its value is empty and it is never terminal.
func (t *Trie) Root() *Node {
	return t.root
}

// Len returns the number of stored words.
func (t *Trie) Len() int {
	return t.size
}

// Insert adds word to the Trie with the given weight. Inserting a word that is
// already stored overwrites its weight.
func (t *Trie) Insert(word string, weight float64) error {
	if word == "" {
		return ErrEmptyWord
	}

	x := t.root
	for _, r := range word {
		next, ok := x.children[r]
		if !ok {
			next = newNode(r, x)
			x.children[r] = next
		}
		x = next
	}

	if !x.terminal {
		t.size++
	}
	x.terminal = true
	x.weight = weight
	return nil
}

// Locate returns the node at the end of the path spelled by prefix. The node
// may or may not be terminal.
func (t *Trie) Locate(prefix string) (*Node, error) {
	x := t.root
	for _, r := range prefix {
		next, ok := x.children[r]
		if !ok {
			return nil, ErrNotFound
		}
		x = next
	}
	return x, nil
}

// IsWord checks if the Trie contains the entire word. A path that exists only
// as a prefix of longer words is reported as ErrNotFound.
func (t *Trie) IsWord(word string) (bool, error) {
	if _, err := t.stopNode(word); err != nil {
		return false, err
	}
	return true, nil
}

// Weight returns the weight stored for word.
func (t *Trie) Weight(word string) (float64, error) {
	x, err := t.stopNode(word)
	if err != nil {
		return 0, err
	}
	return x.weight, nil
}

// stopNode returns the terminal node for word.
func (t *Trie) stopNode(word string) (*Node, error) {
	x, err := t.Locate(word)
	if err != nil {
		return nil, err
	}
	if !x.terminal {
		return nil, ErrNotFound
	}
	return x, nil
}

// CollectWords returns every word stored in the subtree rooted at start,
// start included, mapped to its weight. Keys begin with start's own value, so
// collecting from the root yields full words.
func (t *Trie) CollectWords(start *Node) map[string]float64 {
	words := make(map[string]float64)
	if start == nil {
		return words
	}

	type frame struct {
		node *Node
		word string
	}

	stack := []frame{{node: start, word: start.value}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.node.terminal {
			words[f.word] = f.node.weight
		}
		for _, child := range f.node.children {
			stack = append(stack, frame{node: child, word: f.word + child.value})
		}
	}
	return words
}

// Words returns every stored word mapped to its weight.
func (t *Trie) Words() map[string]float64 {
	return t.CollectWords(t.root)
}

// Search returns all stored words that start with prefix, mapped to their
// weights. The prefix itself is included when it is a stored word.
func (t *Trie) Search(prefix string) (map[string]float64, error) {
	x, err := t.Locate(prefix)
	if err != nil {
		return nil, err
	}

	// Keys from CollectWords already start with the last rune of prefix.
	_, size := utf8.DecodeLastRuneInString(prefix)
	head := prefix[:len(prefix)-size]

	found := t.CollectWords(x)
	words := make(map[string]float64, len(found))
	for suffix, weight := range found {
		words[head+suffix] = weight
	}
	return words, nil
}

// Remove deletes word from the Trie and prunes the nodes that no longer lead
// to any stored word. Removing a word that was never inserted returns
// ErrNotFound and leaves the Trie unchanged.
func (t *Trie) Remove(word string) error {
	x, err := t.stopNode(word)
	if err != nil {
		return err
	}

	x.terminal = false
	x.weight = 0
	t.size--

	if !x.HasChildren() {
		prune(x)
	}
	return nil
}

// prune walks upward from x detaching non-terminal childless nodes. It stops
// at the root, at a terminal node or at a node that still has children.
func prune(x *Node) {
	for !x.terminal && x.HasParent() && !x.HasChildren() {
		parent := x.parent
		r, _ := utf8.DecodeRuneInString(x.value)
		delete(parent.children, r)
		x.parent = nil
		x = parent
	}
}
