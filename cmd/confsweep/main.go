package main

import (
	"os"
)

func main() {
	if err := Execute(); err != nil {
		// Errors are already logged; print the terse form for the user.
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		os.Exit(1)
	}
}
