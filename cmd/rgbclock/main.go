// Command rgbclock renders the RGB clock to files or serves a live preview.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/rgbclock/cmd/rgbclock/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
