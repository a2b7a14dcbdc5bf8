package main

import (
	"github.com/spectonic/urx/cmd/urx-demo/cmd"
)

func main() {
	cmd.Execute()
}
