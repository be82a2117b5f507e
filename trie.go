package trie

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// rootKeyChar labels the root node of every Trie. It is a reserved sentinel
// and never part of a stored key.
const rootKeyChar rune = 0

// Trie maps string keys to values of type V, one character per tree level.
// Insert stores a key at most once and keeps its first value; Find reports
// absence for keys that were never stored, including bare prefixes of longer
// keys. By default keys match exactly; normalisation and case folding can be
// switched on, and should be before the first insert so that stored and
// looked-up keys agree.
//
// A Trie is not safe for concurrent use; callers that share one across
// goroutines must serialise access themselves.
type Trie[V any] struct {
	root          *Node[V]
	normalise     bool
	caseSensitive bool
}

// New creates an empty trie with exact key matching.
func New[V any]() *Trie[V] {
	return &Trie[V]{
		root:          NewNode[V](rootKeyChar),
		caseSensitive: true,
	}
}

// WithNormalisation sets the trie to normalise keys, so that for example
// Jürgen and Jurgen name the same entry.
func (t *Trie[V]) WithNormalisation() *Trie[V] {
	t.normalise = true
	return t
}

// WithoutNormalisation sets the trie not to normalise keys. This is the
// default.
func (t *Trie[V]) WithoutNormalisation() *Trie[V] {
	t.normalise = false
	return t
}

// CaseSensitive sets the trie to match key case exactly. This is the
// default.
func (t *Trie[V]) CaseSensitive() *Trie[V] {
	t.caseSensitive = true
	return t
}

// CaseInsensitive sets the trie to fold key case, so that iPhone and IPHONE
// name the same entry.
func (t *Trie[V]) CaseInsensitive() *Trie[V] {
	t.caseSensitive = false
	return t
}

// canonicalKey maps key to the form under which it is stored, applying the
// configured normalisation and case folding.
func (t *Trie[V]) canonicalKey(key string) (string, error) {
	if t.normalise {
		transformer := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
		normal, _, err := transform.String(transformer, key)
		if err != nil {
			return "", err
		}
		key = normal
	}
	if !t.caseSensitive {
		key = strings.ToLower(key)
	}
	return key, nil
}

// Insert stores value under key and reports whether it did. It reports
// false, leaving every stored value untouched, when the key is empty (or
// canonicalises to empty), when the key cannot be canonicalised, or when a
// value is already stored under the key. Intermediate nodes created while
// walking towards a rejected key are kept; only the final value write is
// skipped.
func (t *Trie[V]) Insert(key string, value V) bool {
	key, err := t.canonicalKey(key)
	if err != nil || key == "" {
		return false
	}

	chars := []rune(key)
	last := len(chars) - 1
	current := t.root
	for _, c := range chars[:last] {
		next, ok := current.Child(c)
		if !ok {
			next, _ = current.InsertChild(c, NewNode[V](c))
		}
		current = next
	}

	lastChar := chars[last]
	if terminal, ok := current.Child(lastChar); ok {
		if _, taken := terminal.Value(); taken {
			return false
		}
		terminal.SetValue(value)
		return true
	}
	current.InsertChild(lastChar, NewNodeWithValue(lastChar, value))
	return true
}

// Find returns the value stored under key. The second return is false when
// the key is empty, cannot be canonicalised, was never inserted, or exists
// only as a prefix of longer keys.
func (t *Trie[V]) Find(key string) (V, bool) {
	key, err := t.canonicalKey(key)
	if err != nil || key == "" {
		var zero V
		return zero, false
	}

	current := t.root
	for _, c := range key {
		next, ok := current.Child(c)
		if !ok {
			var zero V
			return zero, false
		}
		current = next
	}
	return current.Value()
}
