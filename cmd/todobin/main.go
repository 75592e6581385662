package main

import (
	"fmt"
	"os"
)

// Version is reported by --version. Release builds set it with
// -ldflags "-X main.Version=<tag>".
var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
