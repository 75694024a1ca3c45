package main

import (
	"os"

	"animd/internal/animctl"
)

func main() {
	os.Exit(animctl.Execute())
}
