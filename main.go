package main

import (
	"os"

	"github.com/scan-io-git/ssd-reporter/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
