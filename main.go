package main

import "github.com/notargets/quadrule/cmd"

func main() {
	cmd.Execute()
}
