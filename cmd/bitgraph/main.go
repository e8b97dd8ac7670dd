// SPDX-License-Identifier: MIT

// Command bitgraph inspects, converts and stores bit-packed adjacency
// matrices.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
