package main

import "github.com/pace-rs/tt-inspire/cmd"

func main() {
	cmd.Execute()
}
