// Package main is the entry point for the Economia em Foco backend.
package main

import (
	"log"
	"os"

	"economia/src/app/cli"
)

var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		log.Printf("fatal error: %v\n", err)
		os.Exit(1)
	}
}
