package main

import "github.com/hasbyte1/go-range-utils/internal/cli"

func main() {
	cli.Execute()
}
