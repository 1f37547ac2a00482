// cmd/unitconv/main.go
package main

import (
	"unitconv/internal/app"
	"unitconv/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
