package main

import "github.com/pokefetch/dexmap/internal/cli"

func main() {
	cli.Execute()
}
