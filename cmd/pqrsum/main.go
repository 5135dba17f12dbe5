// cmd/pqrsum/main.go
package main

import (
	"strucsum/internal/appshell"
	"strucsum/internal/pqrapp"
)

func main() {
	appshell.Main(pqrapp.RunContext)
}
