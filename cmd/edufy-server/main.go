package main

import (
	"fmt"
	"os"

	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/Sid2318/Edufy/cmd/edufy-server/app"
)

func main() {
	if err := app.NewServerCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
