package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/s-expr-reader/ast"
	"github.com/xiam/s-expr-reader/parser"
)

func printTree(expr ast.Expr) {
	printIndentedTree(expr, 0)
}

func printIndentedTree(expr ast.Expr, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)

	switch e := expr.(type) {
	case *ast.Pair:
		fmt.Printf("%s<%s>\n", indent, e.Type())
		elems, tail := ast.Slice(e)
		for i := range elems {
			printIndentedTree(elems[i], indentationLevel+1)
		}
		if tail != ast.Nil {
			fmt.Printf("%s  <dot>\n", indent)
			printIndentedTree(tail, indentationLevel+2)
			fmt.Printf("%s  </dot>\n", indent)
		}
		fmt.Printf("%s</%s>\n", indent, e.Type())
	case *ast.Atom:
		fmt.Printf("%s<%s>%v</%s>\n", indent, e.Type(), e.Value(), e.Type())
	default:
		fmt.Printf("%s<%s/>\n", indent, expr.Type())
	}
}

func main() {
	input := `(fn_a (fn_b '(89 a b (67 3.27))) (fn_c 66 3 53 "Hello world!" . "😊"))`

	exprs, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, expr := range exprs {
		printTree(expr)
	}
}
