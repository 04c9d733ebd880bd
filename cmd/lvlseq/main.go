// Command lvlseq is a thin harness around the lvlseq algorithm packages: it
// reads whitespace-separated integers (or raw text for match) from a file or
// stdin, runs one algorithm and prints the answer to stdout.
//
//	echo "170 45 75 90 2 802 24 66" | lvlseq radix
//	echo "3 1 3 2" | lvlseq rank --max 3
//	echo "bacbababacabababaca" | lvlseq match --pattern ababaca --starts
//	lvlseq gen --n 10 --min 1 --max 9 --seed 7 | lvlseq sort --algo merge --check
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
