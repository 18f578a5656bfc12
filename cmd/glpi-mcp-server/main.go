package main

import (
	"fmt"
	"os"

	"github.com/moteaz/GLPI-mcp.tools/cmd/glpi-mcp-server/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
