package main

import "github.com/raceday-ai/racerd/internal/cli"

func main() {
	cli.Execute()
}
