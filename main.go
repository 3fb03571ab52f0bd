package main

import "github.com/aklkv/embroider/cmd"

func main() {
	cmd.Execute()
}
