// ABOUTME: Entry point for fittrack CLI.
// ABOUTME: Invokes the root Cobra command.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Execute runs the root command and closes the session even when a
// command fails.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeSession(); err == nil {
		err = cerr
	}
	return err
}
