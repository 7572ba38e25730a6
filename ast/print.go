package ast

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a human-readable tree of the expression to w
func Print(w io.Writer, e Expr) {
	printLevel(w, e, 0)
}

func printLevel(w io.Writer, e Expr, level int) {
	indent := strings.Repeat("    ", level)
	if e == nil {
		fmt.Fprintf(w, "%s:nil\n", indent)
		return
	}
	fmt.Fprintf(w, "%s(%s): ", indent, e.Type())
	switch v := e.(type) {

	case *Pair:
		elems, tail := Slice(v)
		fmt.Fprintf(w, "[%d]\n", len(elems))
		for i := range elems {
			printLevel(w, elems[i], level+1)
		}
		if tail != Nil {
			fmt.Fprintf(w, "%s    .\n", indent)
			printLevel(w, tail, level+1)
		}

	case *Atom:
		if tok := v.Token(); tok != nil {
			fmt.Fprintf(w, "%#v (%v)\n", v.Value(), tok)
			return
		}
		fmt.Fprintf(w, "%#v\n", v.Value())

	default:
		fmt.Fprintf(w, "%s\n", e)
	}
}

// Encode transforms an expression into its text representation. Proper
// lists print as (a b c), a chain ending in anything but Nil uses dotted
// notation: (a b . c).
func Encode(e Expr) []byte {
	var sb strings.Builder
	encode(&sb, e)
	return []byte(sb.String())
}

func encode(sb *strings.Builder, e Expr) {
	p, ok := e.(*Pair)
	if !ok {
		if e == nil {
			sb.WriteString(Nil.String())
			return
		}
		sb.WriteString(e.String())
		return
	}

	sb.WriteByte('(')
	encode(sb, p.first)
	for rest := p.rest; rest != Nil; {
		next, ok := rest.(*Pair)
		if !ok {
			sb.WriteString(" . ")
			encode(sb, rest)
			break
		}
		sb.WriteByte(' ')
		encode(sb, next.first)
		rest = next.rest
	}
	sb.WriteByte(')')
}

// Repr returns a constructor-like representation of the expression, for
// example Pair(quote, Pair(hello, nil)).
func Repr(e Expr) string {
	switch v := e.(type) {
	case *Pair:
		return fmt.Sprintf("Pair(%s, %s)", Repr(v.first), Repr(v.rest))
	case nil:
		return "nil"
	}
	if e == Nil {
		return "nil"
	}
	return e.String()
}
