package main

import (
	"os"

	"github.com/matt-g-everett/animatic/cmds"
)

func main() {
	if err := cmds.Execute(); err != nil {
		os.Exit(1)
	}
}
