package trie

// Node is a single node of a trie storing values of type V. It carries a
// one-character label, an optional value and a map of the children reachable
// from it. Children are owned exclusively by their parent and stored under
// their own label, so a set of nodes linked through InsertChild always forms
// a tree.
type Node[V any] struct {
	keyChar  rune
	value    V
	hasValue bool
	children map[rune]*Node[V]
}

// NewNode creates a node labelled keyChar with no value and no children.
func NewNode[V any](keyChar rune) *Node[V] {
	return &Node[V]{
		keyChar:  keyChar,
		children: make(map[rune]*Node[V]),
	}
}

// NewNodeWithValue creates a node labelled keyChar that carries value.
func NewNodeWithValue[V any](keyChar rune, value V) *Node[V] {
	n := NewNode[V](keyChar)
	n.SetValue(value)
	return n
}

// KeyChar returns the node's label.
func (n *Node[V]) KeyChar() rune {
	return n.keyChar
}

// SetKeyChar relabels the node in place. It does not update the map entry a
// parent may hold this node under, so after relabelling an attached node the
// parent's key and the node's label disagree until the caller re-keys the
// parent. Detach with RemoveChild first to stay consistent.
func (n *Node[V]) SetKeyChar(keyChar rune) {
	n.keyChar = keyChar
}

// HasChild reports whether a child is stored under keyChar.
func (n *Node[V]) HasChild(keyChar rune) bool {
	_, ok := n.children[keyChar]
	return ok
}

// HasChildren reports whether the node has any children at all.
func (n *Node[V]) HasChildren() bool {
	return len(n.children) > 0
}

// InsertChild stores child under keyChar and returns the stored child so the
// caller can keep descending. Nothing is stored and the second return is
// false when a child already exists under keyChar, or when child's own label
// is not keyChar; an existing child must be removed explicitly before it can
// be replaced.
func (n *Node[V]) InsertChild(keyChar rune, child *Node[V]) (*Node[V], bool) {
	if n.HasChild(keyChar) {
		return nil, false
	}
	if child.keyChar != keyChar {
		return nil, false
	}
	n.children[keyChar] = child
	return child, true
}

// Child returns the child stored under keyChar, if any.
func (n *Node[V]) Child(keyChar rune) (*Node[V], bool) {
	child, ok := n.children[keyChar]
	return child, ok
}

// RemoveChild detaches the child stored under keyChar and returns it with
// its whole subtree intact, handing ownership to the caller. The second
// return is false and nothing changes when no child is stored under keyChar.
// Siblings are never affected.
func (n *Node[V]) RemoveChild(keyChar rune) (*Node[V], bool) {
	child, ok := n.children[keyChar]
	if !ok {
		return nil, false
	}
	delete(n.children, keyChar)
	return child, true
}

// Children exposes the node's children, keyed by label, for inspection and
// iteration. The returned map is the node's own storage; callers must not
// modify it.
func (n *Node[V]) Children() map[rune]*Node[V] {
	return n.children
}

// Value returns the node's value, if one has been set.
func (n *Node[V]) Value() (V, bool) {
	return n.value, n.hasValue
}

// SetValue stores value on the node, replacing any previous value. Callers
// that must not overwrite check Value first; Trie.Insert does.
func (n *Node[V]) SetValue(value V) {
	n.value = value
	n.hasValue = true
}
