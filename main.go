package main

import "github.com/ysaito/ghfolio/cmd"

func main() {
	cmd.Execute()
}
