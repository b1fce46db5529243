package main

import (
	"os"

	"github.com/conneroisu/bizconsult/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
