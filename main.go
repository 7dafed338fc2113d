package main

import "github.com/seqplan/seqplan/cmd"

func main() {
	cmd.Execute()
}
