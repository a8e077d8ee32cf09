package main

import "github.com/mlanaro/spotitheme/cmd"

func main() {
	cmd.Execute()
}
