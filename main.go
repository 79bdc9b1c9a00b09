package main

import "dropshell/cmd"

func main() {
	cmd.Execute()
}
