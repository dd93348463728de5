// Lexdump tokenizes query text from stdin, one line per token, for
// eyeballing scanner output against the backend grammar.
package main

import (
	"bufio"
	"fmt"
	"os"

	"vellum"
	"vellum/scan"
)

func main() {

	layout, err := vellum.LoadLayout("vocab.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	scanner := scan.New(layout.Fields)

	in := bufio.NewScanner(os.Stdin)
	for in.Scan() {
		for _, tok := range scanner.Scan(in.Text()) {
			fmt.Printf("%3d %3d %-10s %q\n", tok.Start, tok.End, tok.Type, tok.Text)
		}
		fmt.Println()
	}

	if err := in.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
