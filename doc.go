/*
Package trie provides a generic prefix tree (trie) container mapping string
keys to values of an arbitrary type. Keys are stored one character per node,
inserting never overwrites an existing key, and lookups distinguish stored
keys from bare prefixes. Keys can optionally be normalised and case folded
before they reach the tree.
*/
package trie
