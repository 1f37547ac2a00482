// cmd/unitconv-batch/main.go
package main

import (
	"unitconv/internal/appshell"
	"unitconv/internal/batchapp"
)

func main() { appshell.Main(batchapp.RunContext) }
