package main

import "github.com/cinedex/cinedex/cmd"

var execute = cmd.Execute

func main() {
	execute()
}
