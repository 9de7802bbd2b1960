package main

import "list-manager/cmd"

func main() {
	cmd.Execute()
}
