package main

import "github.com/curatord/curatord/cmd"

func main() {
	cmd.Execute()
}
