package inventory

import (
	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
	"github.com/moteaz/GLPI-mcp.tools/pkg/toolsets"
)

// Toolset represents the inventory toolset
type Toolset struct{}

// Name returns the toolset name
func (t *Toolset) Name() string {
	return "inventory"
}

// GetTools returns all tools in this toolset
func (t *Toolset) GetTools() []api.ServerTool {
	return inventoryTools()
}

func init() {
	toolsets.Register(&Toolset{})
}
