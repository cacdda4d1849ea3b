package main

import "github.com/rxhost/catalogctl/cmd"

func main() {
	cmd.Execute()
}
