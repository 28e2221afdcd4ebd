package main

import "cardwise/cmd"

func main() {
	cmd.Execute()
}
