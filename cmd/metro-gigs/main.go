package main

import (
	"os"

	"github.com/tgardener/metro-gigs/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
