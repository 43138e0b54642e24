// cmd/cacoepy/main.go
package main

import (
	"os"

	"github.com/Brono25/cacoepy/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
