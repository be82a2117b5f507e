package trie

import "fmt"

func Example() {
	t := New[string]()
	t.Insert("go", "a compiled language")
	t.Insert("gopher", "a burrowing rodent")

	if v, ok := t.Find("gopher"); ok {
		fmt.Println(v)
	}

	_, ok := t.Find("gop")
	fmt.Println(ok)

	// Output:
	// a burrowing rodent
	// false
}

func Example_duplicateKeys() {
	t := New[int]()
	fmt.Println(t.Insert("answer", 42))
	fmt.Println(t.Insert("answer", 7))

	v, _ := t.Find("answer")
	fmt.Println(v)

	// Output:
	// true
	// false
	// 42
}

func Example_normalisedKeys() {
	t := New[string]().WithNormalisation().CaseInsensitive()
	t.Insert("Jürgen", "+41 79 123 45 67")

	if v, ok := t.Find("jurgen"); ok {
		fmt.Println(v)
	}

	// Output:
	// +41 79 123 45 67
}

func Example_exactMatch() {
	t := New[int]().CaseSensitive().WithoutNormalisation()
	t.Insert("Jürg", 1)

	_, ok := t.Find("jurg")
	fmt.Println(ok)

	v, ok := t.Find("Jürg")
	fmt.Println(v, ok)

	// Output:
	// false
	// 1 true
}

func ExampleNode_InsertChild() {
	root := NewNode[int]('a')
	if _, ok := root.InsertChild('b', NewNode[int]('b')); ok {
		fmt.Println("attached b")
	}
	if _, ok := root.InsertChild('d', NewNode[int]('b')); !ok {
		fmt.Println("key and label must agree")
	}

	// Output:
	// attached b
	// key and label must agree
}
