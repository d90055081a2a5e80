package main

import "github.com/sadopc/reviewr/cmd"

func main() {
	cmd.Execute()
}
