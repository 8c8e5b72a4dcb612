package main

import "miniblog/cmd/miniblog/commands"

func main() {
	commands.Execute()
}
