package main

import (
	"os"

	"github.com/phishreport/phishreport/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
