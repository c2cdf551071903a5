package main

import (
	"context"
	"os"

	"task-tracker/internal/cli"
)

func main() {
	os.Exit(run())
}

func run() int {
	return cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
