package main

import (
	"os"

	"github.com/thenoetrevino/quotebank/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
