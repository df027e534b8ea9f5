package main

import "github.com/ozkat/fleetweb/cmd/fleetweb/command"

func main() {
	command.Execute()
}
