package main

import "github.com/alexiusacademia/gobend/cmd"

func main() {
	cmd.Execute()
}
