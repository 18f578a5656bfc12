package toolsets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moteaz/GLPI-mcp.tools/pkg/toolsets"

	// Register all toolsets
	_ "github.com/moteaz/GLPI-mcp.tools/pkg/toolsets/inventory"
	_ "github.com/moteaz/GLPI-mcp.tools/pkg/toolsets/session"
	_ "github.com/moteaz/GLPI-mcp.tools/pkg/toolsets/tickets"
)

func TestRegisteredToolsets(t *testing.T) {
	all := toolsets.All()

	names := []string{}
	toolNames := []string{}
	for _, toolset := range all {
		names = append(names, toolset.Name())
		for _, tool := range toolset.GetTools() {
			toolNames = append(toolNames, tool.Tool.Name)
		}
	}

	assert.ElementsMatch(t, []string{"session", "tickets", "inventory"}, names)
	assert.ElementsMatch(t, []string{
		"init_session", "kill_session",
		"list_tickets", "get_ticket", "create_ticket", "update_ticket", "delete_ticket",
		"get_users", "get_computers", "get_groups", "add_computer",
	}, toolNames)
	assert.Len(t, toolNames, 11)
}

func TestToolSchemasRequireCredentials(t *testing.T) {
	for _, toolset := range toolsets.All() {
		for _, tool := range toolset.GetTools() {
			schema := tool.Tool.InputSchema
			assert.NotNil(t, schema, "tool %s has no input schema", tool.Tool.Name)
			assert.Contains(t, schema.Required, "base_url", "tool %s must require base_url", tool.Tool.Name)
			assert.Contains(t, schema.Required, "app_token", "tool %s must require app_token", tool.Tool.Name)
			if tool.Tool.Name != "init_session" {
				assert.Contains(t, schema.Required, "session_token", "tool %s must require session_token", tool.Tool.Name)
			}
		}
	}
}
