package trie

// Node represents a node in the Trie
type Node struct {
	value    string
	children map[rune]*Node
	terminal bool
	weight   float64
	parent   *Node
}

func newNode(r rune, parent *Node) *Node {
	return &Node{
		value:    string(r),
		children: make(map[rune]*Node),
		parent:   parent,
	}
}

// Value returns the unit of text on the edge leading to this node; empty for the root.
func (n *Node) Value() string {
	return n.value
}

// IsTerminal reports whether a stored word ends at this node.
func (n *Node) IsTerminal() bool {
	return n.terminal
}

// Weight returns the weight of the word ending here. Zero when not terminal.
func (n *Node) Weight() float64 {
	return n.weight
}

// Parent returns the node this one hangs off, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// HasParent reports whether n is below the root.
func (n *Node) HasParent() bool {
	return n.parent != nil
}

// HasChildren reports whether any word continues past n.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// NumChildren returns the number of outgoing edges.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// Child returns the child reached over r, or nil.
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}
