// cmd/fqtrim/main.go
package main

import (
	"fqtrim/internal/app"
	"fqtrim/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
