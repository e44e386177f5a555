// cmd/exifgps/main.go
package main

import (
	"github.com/bstardust/exifgps/internal/logger"
	"github.com/bstardust/exifgps/pkg/cli"
)

func main() {
	// Initialize logger
	logger.Init()

	// Execute CLI
	cli.Execute()
}
