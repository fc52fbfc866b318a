package main

import "github.com/theirongolddev/econopsych/cmd"

func main() {
	cmd.Execute()
}
