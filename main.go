package main

import "github.com/notargets/goinpaint/cmd"

func main() {
	cmd.Execute()
}
