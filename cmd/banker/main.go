package main

import "github.com/okarpov/boardbanker/internal/cli"

func main() {
	cli.Execute()
}
