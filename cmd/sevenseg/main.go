package main

import "github.com/coreman2200/funtimes-sevenseg/internal/cli"

var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.Execute()
}
