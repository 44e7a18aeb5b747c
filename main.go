package main

import "devup/internal/cli"

func main() {
	cli.Execute()
}
