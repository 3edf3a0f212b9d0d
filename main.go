package main

import (
	"os"

	"github.com/beacon-foundation/beacon/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
