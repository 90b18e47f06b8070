package bst

import (
	"fmt"
	"io"
	"strings"
)

// MaxPrettyHeight bounds the trees PrettyPrint accepts; the diagram is 2^height cells wide.
const MaxPrettyHeight = 16

// String renders the header "size:N height:H" followed by every entry as "(k,v) ".
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "size:%d height:%d\n", t.size, t.height)
	for k, v := range t.All() {
		fmt.Fprintf(&sb, "(%v,%v) ", k, v)
	}
	return sb.String()
}

func entryString[K, V any](n *node[K, V]) string {
	return fmt.Sprintf("%v:%v", n.key, n.value)
}

// centered pads s with fill to size characters. The extra character of an
// odd padding goes on the left.
func centered(s string, size int, fill byte) string {
	if size <= len(s) {
		return s
	}
	pad := size - len(s)
	f := string(fill)
	return strings.Repeat(f, pad/2+pad%2) + s + strings.Repeat(f, pad/2)
}

// PrettyPrint draws the tree level by level. Every level doubles the number
// of cells and halves their width; missing nodes are drawn as empty.
func (t *Tree[K, V]) PrettyPrint(w io.Writer, empty string) error {
	if t.height < 1 {
		s := empty
		if t.root != nil {
			s = entryString(t.root)
		}
		_, err := fmt.Fprintln(w, s)
		return err
	}
	if t.height > MaxPrettyHeight {
		return fmt.Errorf("tree height %d exceeds printable height %d", t.height, MaxPrettyHeight)
	}

	cell := 0
	for n := t.root.leftmost(); n != nil; n = n.next() {
		if l := len(entryString(n)); l > cell {
			cell = l
		}
	}
	cell = (cell + 2) << t.height

	level := []*node[K, V]{t.root}
	var sb strings.Builder
	for depth := 0; depth <= t.height; depth++ {
		sb.Reset()
		next := make([]*node[K, V], 0, 2*len(level))
		for _, n := range level {
			s := empty
			if n != nil {
				s = entryString(n)
				next = append(next, n.left, n.right)
			} else {
				next = append(next, nil, nil)
			}
			sb.WriteString(centered(s, cell, ' '))
		}
		sb.WriteString("\n\n")
		if _, err := io.WriteString(w, sb.String()); err != nil {
			return err
		}
		level = next
		cell /= 2
	}
	return nil
}
