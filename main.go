package main

import (
	"embed"

	"github.com/exploitedtest/kb2midi/app/lifecycle"
)

//go:embed all:frontend/dist
var assets embed.FS

// Compile with the following to get rid of the cmd popup on windows
// go build -ldflags="-H windowsgui"

func main() {
	lifecycle.Run(assets)
}
