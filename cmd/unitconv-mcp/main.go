// cmd/unitconv-mcp/main.go
package main

import (
	"unitconv/internal/appshell"
	"unitconv/internal/mcpserver"
)

func main() { appshell.MainInteractive(mcpserver.RunContext) }
