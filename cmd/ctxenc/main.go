// SPDX-License-Identifier: MIT

// Command ctxenc encodes categorical CSV data into numeric coordinates using
// semantic hierarchies described in a YAML document.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
