// Command gen writes the base 10000 lookup table embedded by package ints.
package main

import (
	"fmt"
	"os"

	"realy.lol/nostrcore/chk"
)

func main() {
	fh, err := os.Create("base10k.txt")
	if chk.E(err) {
		panic(err)
	}
	defer fh.Close()
	for i := range 10000 {
		_, _ = fmt.Fprintf(fh, "%04d", i)
	}
}
