package main

import "github.com/ZYADEV/DataViz/cmd"

func main() {
	cmd.Execute()
}
