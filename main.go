package main

import "github.com/lysseus/memory/cmd"

func main() {
	cmd.Execute()
}
