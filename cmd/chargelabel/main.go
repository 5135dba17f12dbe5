// cmd/chargelabel/main.go
package main

import (
	"strucsum/internal/appshell"
	"strucsum/internal/labelapp"
)

func main() {
	appshell.Main(labelapp.RunContext)
}
