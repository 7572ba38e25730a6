package main

import (
	"log"
	"os"

	"github.com/xiam/s-expr-reader/ast"
	"github.com/xiam/s-expr-reader/parser"
)

func main() {
	input := `(fn_a (fn_b '(89 a b (67 3.27))) (fn_c 66 3 53 "Hello world!" . "😊"))`

	exprs, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for _, expr := range exprs {
		ast.Print(os.Stdout, expr)
	}
}
