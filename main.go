package main

import "github.com/salu133445/musecodec/cmd"

func main() {
	cmd.Execute()
}
