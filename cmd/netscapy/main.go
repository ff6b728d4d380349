package main

import (
	"os"

	"github.com/netscapy/netscapy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
