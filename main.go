package main

import "github.com/josephlewis42/eggshell/cmd"

func main() {
	cmd.Execute()
}
