// Tonal - a Material You colour scheme generator
//
// Tonal derives a colour scheme from an image or a colour and renders it
// into configuration templates for your applications.
package main

import (
	"os"

	"github.com/jmylchreest/tonal/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
