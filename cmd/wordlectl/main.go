package main

import "wordleboard/internal/cli"

func main() {
	cli.Execute()
}
