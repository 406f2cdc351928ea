package main

import (
	"os"

	"github.com/daneoapp/daneo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
