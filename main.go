package main

import "github.com/Eursukkul/restaurant-reservation/cmd"

func main() {
	cmd.Execute()
}
