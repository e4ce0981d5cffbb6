package main

import (
	"github.com/onflow/devrand/cmd/randint/cmd"
)

func main() {
	cmd.Execute()
}
