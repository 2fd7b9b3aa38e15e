package main

import (
	"os"

	"github.com/logic-lang/logicopt/cli"
)

func main() {
	os.Exit(cli.Execute())
}
