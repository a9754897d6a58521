package main

import "github.com/alexiusacademia/gorsd/cmd"

func main() {
	cmd.Execute()
}
