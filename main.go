package main

import "github.com/jfmyers9/kavalock/cmd"

func main() {
	cmd.Execute()
}
