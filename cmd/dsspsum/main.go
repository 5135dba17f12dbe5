// cmd/dsspsum/main.go
package main

import (
	"strucsum/internal/appshell"
	"strucsum/internal/dsspapp"
)

func main() {
	appshell.Main(dsspapp.RunContext)
}
