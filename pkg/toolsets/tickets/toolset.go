package tickets

import (
	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
	"github.com/moteaz/GLPI-mcp.tools/pkg/toolsets"
)

// Toolset represents the tickets toolset
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "tickets"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	return ticketTools()
}

func init() {
	toolsets.Register(&Toolset{})
}
