package main

import "github.com/seqlab/prothub/cmd/prothub/commands"

func main() {
	commands.Execute()
}
