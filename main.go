package main

import (
	"github.com/Ahinurosora-bb/BBL-434-LAB/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
