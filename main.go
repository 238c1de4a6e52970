package main

import "github.com/fakeyudi/lsgit/cmd"

func main() {
	cmd.Execute()
}
