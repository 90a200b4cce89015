package main

import (
	"os"

	"github.com/mliezun/lox/cmd/lox/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
