package main

import (
	"os"

	"fencecalc/commands"
)

func main() {
	os.Exit(commands.Execute())
}
