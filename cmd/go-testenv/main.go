package main

import "go-testenv/internal/cli"

func main() {
	cli.Execute()
}
