package main

import "github.com/mcoot/playerlist/internal/cli"

func main() {
	cli.Execute()
}
