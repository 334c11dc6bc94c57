package main

import (
	"github.com/jjtimmons/jst/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
