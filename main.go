package main

import (
	"github.com/thanhnguyen2187/pak-savior/cli"
)

func main() {
	cli.Start()
}
