// Package demo implements the interactive command prompt for playing with a
// bst.Tree of int keys and float64 values.
package demo

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/kocubinski/bstree/bst"
)

const menu = `--Interactive Demo Commands--
 p 	: prints the tree
 b 	: balances the tree
 f K	: finds node with key K:int and prints its value (if found)
 e K V	: edits/inserts (K:int,V:float) into the tree
 x K	: erases node with key K:int
 c 	: clears the tree
 r N	: dump the tree and generate a new random one of size N:int
 d 	: prints the tree as a graphviz digraph
 h 	: prints this command list
 q 	: exits the demo
`

// Session reads one command per line from in and writes responses to out.
type Session struct {
	Tree *bst.Tree[int, float64]

	in    *bufio.Scanner
	out   io.Writer
	rng   *rand.Rand
	empty string
}

// NewSession creates a session over an empty tree. empty is the placeholder
// drawn for missing children in the diagram.
func NewSession(in io.Reader, out io.Writer, seed uint64, empty string) *Session {
	return &Session{
		Tree:  bst.NewOrdered[int, float64](),
		in:    bufio.NewScanner(in),
		out:   out,
		rng:   rand.New(rand.NewPCG(seed, seed)),
		empty: empty,
	}
}

// Rebuild replaces the content with a random permutation of 1..n, the i-th
// inserted key k getting the value 7.77*i*k.
func (s *Session) Rebuild(n int, verbose bool) {
	s.Tree.Clear()
	for i, k := range s.rng.Perm(n) {
		k++
		v := 7.77 * float64(i) * float64(k)
		if verbose {
			fmt.Fprintf(s.out, "inserting %d %v...", k, v)
		}
		it, ok := s.Tree.Insert(k, v)
		if verbose {
			key, val, _ := it.Pair()
			status := "failed!"
			if ok {
				status = "done!"
			}
			fmt.Fprintf(s.out, "%s %d %v s:%d h:%d\n", status, key, *val, s.Tree.Size(), s.Tree.Height())
		}
	}
}

// Run starts with a random tree of size entries and processes commands until
// "q" or the end of input.
func (s *Session) Run(size int) error {
	if size < 0 {
		return fmt.Errorf("negative tree size %d", size)
	}
	fmt.Fprint(s.out, "Welcome to the interactive demo!\n"+
		"It is suggested to run this demo on a large console for proper printing.\n\n")
	s.Rebuild(size, true)
	fmt.Fprintln(s.out, "Here's your randomly generated bst:")
	s.print()
	fmt.Fprintln(s.out, "Now, what do we do to it?")
	fmt.Fprintln(s.out, menu)

	for {
		fmt.Fprint(s.out, "Command: ")
		if !s.in.Scan() {
			fmt.Fprintln(s.out)
			break
		}
		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "q" {
			break
		}
		if err := s.exec(fields[0], fields[1:]); err != nil {
			fmt.Fprintf(s.out, "Invalid input: %v\n", err)
		}
	}
	if err := s.in.Err(); err != nil {
		return fmt.Errorf("error reading commands: %w", err)
	}
	fmt.Fprintln(s.out, "Thanks for running the demo :)\nBye bye!")
	return nil
}

func (s *Session) exec(cmd string, args []string) error {
	switch cmd {
	case "p":
		s.print()
	case "b":
		s.Tree.Balance()
		fmt.Fprintln(s.out, "Tree balanced!")
	case "f":
		k, err := intArg(args, 0)
		if err != nil {
			return err
		}
		it := s.Tree.Find(k)
		if it.IsEnd() {
			fmt.Fprintf(s.out, "Key %q not found!\n", strconv.Itoa(k))
			return nil
		}
		v, err := it.Value()
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "Key found! %d:%v\n", k, *v)
	case "e":
		k, err := intArg(args, 0)
		if err != nil {
			return err
		}
		if len(args) < 2 {
			return fmt.Errorf("missing value")
		}
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		*s.Tree.At(k) = v
		fmt.Fprintf(s.out, "%d:%v set.\n", k, v)
	case "x":
		k, err := intArg(args, 0)
		if err != nil {
			return err
		}
		s.Tree.Erase(k)
		fmt.Fprintln(s.out, "Erase attempted")
	case "c":
		s.Tree.Clear()
		fmt.Fprintln(s.out, "Bst cleared!")
	case "r":
		n, err := intArg(args, 0)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("negative size %d", n)
		}
		s.Rebuild(n, false)
		fmt.Fprintln(s.out, "Bst recreated!")
	case "d":
		fmt.Fprintln(s.out, s.Tree.DotGraph())
	default:
		if cmd != "h" {
			fmt.Fprintln(s.out, "That's not a command! Try one of these:")
		}
		fmt.Fprintln(s.out, menu)
	}
	return nil
}

// print draws the diagram followed by the plain dump. A tree too tall to
// draw only gets the dump.
func (s *Session) print() {
	if err := s.Tree.PrettyPrint(s.out, s.empty); err != nil {
		fmt.Fprintln(s.out, err)
	}
	fmt.Fprintln(s.out, s.Tree.String())
}

func intArg(args []string, i int) (int, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing key")
	}
	return strconv.Atoi(args[i])
}
