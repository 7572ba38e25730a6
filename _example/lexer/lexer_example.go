package main

import (
	"fmt"
	"log"

	"github.com/xiam/s-expr-reader/lexer"
)

func main() {
	input := []string{
		`(fn_a ; comment`,
		`	(fn_b '(89 a b (67 3.27)))`,
		`	(fn_c 66 3 53 "Hello world!" . #t))`,
	}

	tokenizer := lexer.NewTokenizer(lexer.FromStrings(input...))
	for i := 0; ; {
		line, err := tokenizer.NextLine()
		if err != nil {
			break
		}
		for _, tok := range line {
			ln, col := tok.Pos()
			fmt.Printf("token[%d] (type: %v, line: %d, col: %d)\n\t-> %q\n\n", i, tok.Type(), ln, col, tok.Text())
			i++
		}
	}
}
