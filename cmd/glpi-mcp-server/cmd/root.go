package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	// Import toolsets to register them
	_ "github.com/moteaz/GLPI-mcp.tools/pkg/toolsets/inventory"
	_ "github.com/moteaz/GLPI-mcp.tools/pkg/toolsets/session"
	_ "github.com/moteaz/GLPI-mcp.tools/pkg/toolsets/tickets"

	"github.com/moteaz/GLPI-mcp.tools/pkg/glpi"
	"github.com/moteaz/GLPI-mcp.tools/pkg/mcp"
	"github.com/moteaz/GLPI-mcp.tools/pkg/toolsets"
	"github.com/moteaz/GLPI-mcp.tools/pkg/version"
)

var (
	showVersion bool
	httpMode    bool
	httpAddr    string
	debug       bool
)

var rootCmd = &cobra.Command{
	Use:   "glpi-mcp-server",
	Short: "MCP server exposing the GLPI REST API as tools",
	Long: `A Model Context Protocol (MCP) server that lets AI assistants
authenticate against a GLPI deployment and manage tickets, users,
computers and groups through its REST API.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.Flags().BoolVar(&httpMode, "http", false, "Run in HTTP/SSE mode instead of STDIO")
	rootCmd.Flags().StringVar(&httpAddr, "http-addr", "localhost:8080", "HTTP server address (only used with --http)")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
}

func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	// Show version if requested
	if showVersion {
		fmt.Println(version.Info())
		return nil
	}

	// Logs go to stderr only; stdout belongs to the JSON-RPC framing in
	// STDIO mode.
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if debug {
		logger.SetLevel(logrus.DebugLevel)
	}

	// Create the GLPI provider; it holds no credentials, every tool call
	// supplies its own.
	provider := glpi.NewProvider(logger)

	// Get all registered toolsets
	allToolsets := toolsets.All()
	if len(allToolsets) == 0 {
		return fmt.Errorf("no toolsets registered")
	}

	logger.WithField("toolsets", len(allToolsets)).Debug("registered toolsets")

	// Create MCP server
	server, err := mcp.NewServer(provider, allToolsets, logger)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	// Start server with appropriate transport
	ctx := cmd.Context()

	if httpMode {
		logger.Info("starting GLPI MCP server in HTTP/SSE mode")
		if err := server.ServeHTTP(ctx, httpAddr); err != nil {
			return fmt.Errorf("failed to start MCP server: %w", err)
		}
	} else {
		logger.Debug("starting GLPI MCP server in STDIO mode")
		if err := server.ServeStdio(ctx); err != nil {
			return fmt.Errorf("failed to start MCP server: %w", err)
		}
	}

	return nil
}
