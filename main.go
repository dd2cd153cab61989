package main

import "github.com/ethanolivertroy/debcrates/cmd"

func main() {
	cmd.Execute()
}
