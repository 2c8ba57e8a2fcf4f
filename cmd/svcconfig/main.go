package main

import (
	"fmt"
	"os"

	"github.com/routekit/svcconfig/internal/cli"
)

func main() {
	if err := cli.Execute(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
