// cmd/unitconv-tui/main.go
package main

import (
	"unitconv/internal/appshell"
	"unitconv/internal/tui"
)

func main() { appshell.MainInteractive(tui.RunContext) }
