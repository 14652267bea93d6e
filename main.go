package main

import "github.com/timvw/nitro/cmd"

func main() {
	cmd.Execute()
}
