package main

import (
	"os"

	"github.com/YuWang03/cluebench/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
