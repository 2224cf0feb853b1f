package main

import "asciimaid/cmd"

func main() {
	cmd.Execute()
}
