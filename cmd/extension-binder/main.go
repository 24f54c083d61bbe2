// Package main provides the CLI entrypoint for extension-binder.
//
// extension-binder works on Go struct types described by an extension file:
//   - check validates the extension file, optionally against loaded packages
//   - xsd prints the XML Schema of the configured types
//   - gen writes explicit bindings so marshalling needs no reflection
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
