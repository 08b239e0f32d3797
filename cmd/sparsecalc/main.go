// Command sparsecalc adds, subtracts and multiplies sparse matrices stored
// as COO text files.
//
//	sparsecalc list mul            # list operands, mark compatible ones
//	sparsecalc add matrix1.txt matrix2.txt
//	sparsecalc run "*" matrix1.txt matrix3.txt --output out/
//
// Operands are read from the input directory and each result is printed and
// written to <output>/result_<operation>.txt.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
