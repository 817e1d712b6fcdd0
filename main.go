package main

import (
	"os"

	"github.com/tsotne01/css-animation-mastery/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
