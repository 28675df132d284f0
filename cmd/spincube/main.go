package main

import "github.com/ederwin/spincube/internal/cli"

func main() {
	cli.Execute()
}
