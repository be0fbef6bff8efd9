package main

import (
	"os"

	"github.com/couchcryptid/food-freshness/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
