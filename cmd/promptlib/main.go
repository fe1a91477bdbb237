// Command promptlib manages a library of prompty prompt templates.
package main

import (
	"os"

	"github.com/djahlor/prompt-library/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
