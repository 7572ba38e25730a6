package ast

// Expr is a parsed expression: an *Atom, Nil or a *Pair.
type Expr interface {
	Type() NodeType
	String() string
}

type nilExpr struct{}

func (nilExpr) Type() NodeType {
	return NodeTypeNil
}

func (nilExpr) String() string {
	return "()"
}

// Nil is the empty list.
var Nil Expr = nilExpr{}

// Pair is an immutable cons cell.
type Pair struct {
	first Expr
	rest  Expr
}

// Cons creates a pair. A nil Go value in either position stands for Nil.
func Cons(first, rest Expr) *Pair {
	if first == nil {
		first = Nil
	}
	if rest == nil {
		rest = Nil
	}
	return &Pair{first: first, rest: rest}
}

// First returns the first element of the pair
func (p *Pair) First() Expr {
	return p.first
}

// Rest returns the second element of the pair
func (p *Pair) Rest() Expr {
	return p.rest
}

// Type returns NodeTypePair
func (p *Pair) Type() NodeType {
	return NodeTypePair
}

func (p *Pair) String() string {
	return string(Encode(p))
}

// List builds a proper list out of the given elements.
func List(elems ...Expr) Expr {
	list := Nil
	for i := len(elems) - 1; i >= 0; i-- {
		list = Cons(elems[i], list)
	}
	return list
}

// IsList returns true if e is Nil or a chain of pairs ending in Nil.
func IsList(e Expr) bool {
	_, tail := Slice(e)
	return tail == Nil
}

// Len returns the number of pairs chained from e.
func Len(e Expr) int {
	elems, _ := Slice(e)
	return len(elems)
}

// Slice walks the chain of pairs starting at e and returns the first element
// of each pair together with whatever ends the chain: Nil for a proper list,
// any other expression for a dotted one.
func Slice(e Expr) ([]Expr, Expr) {
	var elems []Expr
	for {
		p, ok := e.(*Pair)
		if !ok {
			return elems, e
		}
		elems = append(elems, p.first)
		e = p.rest
	}
}

// Equal reports whether a and b have the same structure and atom values.
func Equal(a, b Expr) bool {
	for {
		pa, ok := a.(*Pair)
		if !ok {
			break
		}
		pb, ok := b.(*Pair)
		if !ok {
			return false
		}
		if !Equal(pa.first, pb.first) {
			return false
		}
		a, b = pa.rest, pb.rest
	}

	switch av := a.(type) {
	case *Atom:
		bv, ok := b.(*Atom)
		return ok && av.nt == bv.nt && av.v == bv.v
	case nil:
		return b == nil
	}
	return a == b
}
