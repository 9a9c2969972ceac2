// Command subtextctl is a small CLI front end over this module's parsers
// and HLS client, used for manual testing and as a runnable demo of the
// two-pass APIs.
package main

import (
	"os"

	"github.com/avtext/subtext/cmd/subtextctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
