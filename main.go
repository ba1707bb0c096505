package main

import "github.com/agentic-research/recordwire/cmd"

func main() {
	cmd.Execute()
}
