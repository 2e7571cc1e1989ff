// Package main provides the entry point for the Axes Canvas application.
package main

import (
	"log"

	"axescanvas/internal/cli"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	cli.Execute()
}
