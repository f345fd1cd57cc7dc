package main

import "github.com/cinescope/cinescope/cmd"

func main() {
	cmd.Execute()
}
