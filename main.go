package main

import "oracheck/cmd"

func main() {
	cmd.Execute()
}
