// Command thicket-replay runs an event script against the demo UI without a
// window and prints the element events it produced.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
