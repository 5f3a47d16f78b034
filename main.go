// ABOUTME: Entry point for the alumni-connect CLI
// ABOUTME: Terminal client for the Alumni Connect platform API

package main

import (
	"fmt"
	"os"

	"alumniconnect/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
