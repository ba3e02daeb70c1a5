// Command csvpeek prints the head, tail or a single column of a delimited
// text file.
//
// Example:
//
//	csvpeek wine.csv --last 5 --pretty
package main

import (
	"os"

	"github.com/bjaus/csvpeek/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
