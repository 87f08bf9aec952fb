// Command molfrag extracts bounded partial structures from LAMMPS
// read_data files and writes them as molecule-format files annotated
// with bonding atoms, edge atoms, and edge fingerprints.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
