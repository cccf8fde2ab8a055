// Command quillrender is the CLI harness spec.md §6 leaves room for:
// the core only defines a library surface (bytes -> DOM -> styled DOM
// -> layout -> dump), and explicitly pushes the event loop, UI chrome,
// and network layer out of scope, so this binary is the thin driver
// that exercises the full pipeline end to end for manual testing and
// the render/dump/diff subcommands below.
package main

import (
	"fmt"
	"os"

	"github.com/quillweb/quill/cmd/quillrender/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
