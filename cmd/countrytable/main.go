package main

import "countrytable/cmd/countrytable/cmd"

func main() {
	cmd.Execute()
}
