package main

import (
	"os"

	"github.com/IbtisamHemmo/Marketing-POC/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
