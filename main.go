package main

import "github.com/alksdev/alksctl/cmd"

func main() {
	cmd.Execute()
}
