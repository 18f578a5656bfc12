package session

import (
	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
	"github.com/moteaz/GLPI-mcp.tools/pkg/toolsets"
)

// Toolset represents the session toolset
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "session"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	return sessionTools()
}

func init() {
	toolsets.Register(&Toolset{})
}
