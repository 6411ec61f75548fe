package main

import "github.com/pkamau/versedeck/cmd"

func main() {
	cmd.Execute()
}
