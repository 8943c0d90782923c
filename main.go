package main

import "github.com/mpapenbr/pitstop-explorer-go/cmd"

func main() {
	cmd.Execute()
}
