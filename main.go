package main

import "extref/cmd"

func main() {
	cmd.Execute()
}
