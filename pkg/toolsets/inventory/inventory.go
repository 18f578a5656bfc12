package inventory

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
)

func credentialSchema(extra map[string]*jsonschema.Schema, extraRequired ...string) *jsonschema.Schema {
	properties := map[string]*jsonschema.Schema{
		"base_url":      {Type: "string", Description: "Base URL of the GLPI deployment"},
		"app_token":     {Type: "string", Description: "GLPI application token (App-Token header)"},
		"session_token": {Type: "string", Description: "Session token from init_session"},
	}
	for name, schema := range extra {
		properties[name] = schema
	}
	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   append([]string{"base_url", "app_token", "session_token"}, extraRequired...),
	}
}

func inventoryTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "get_users",
				Description: "List all users",
				InputSchema: credentialSchema(nil),
			},
			Handler: listResource("/User", "users"),
		},
		{
			Tool: api.Tool{
				Name:        "get_computers",
				Description: "List all computers",
				InputSchema: credentialSchema(nil),
			},
			Handler: listResource("/Computer", "computers"),
		},
		{
			Tool: api.Tool{
				Name:        "get_groups",
				Description: "List all groups",
				InputSchema: credentialSchema(nil),
			},
			Handler: listResource("/Group", "groups"),
		},
		{
			Tool: api.Tool{
				Name:        "add_computer",
				Description: "Create a new computer",
				InputSchema: credentialSchema(map[string]*jsonschema.Schema{
					"name":    {Type: "string", Description: "Computer name"},
					"content": {Type: "string", Description: "Computer description"},
				}, "name", "content"),
			},
			Handler: addComputer,
		},
	}
}

// listResource builds a handler that lists one fixed GLPI resource collection
func listResource(path, what string) api.ToolHandlerFunc {
	return func(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
		creds, err := params.Credentials()
		if err != nil {
			return api.NewToolCallResult("", err), nil
		}

		result, err := params.GLPIProvider.Get(params.Context, creds, path, nil)
		if err != nil {
			return api.NewToolCallResult("", fmt.Errorf("failed to list %s: %w", what, err)), nil
		}

		return api.NewToolCallResult(string(result), nil), nil
	}
}

func addComputer(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	creds, err := params.Credentials()
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	name, err := params.RequireString("name")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	content, err := params.RequireString("content")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}

	payload := map[string]any{
		"input": map[string]any{
			"name":    name,
			"content": content,
		},
	}

	result, err := params.GLPIProvider.Post(params.Context, creds, "/Computer", payload)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to add computer: %w", err)), nil
	}

	return api.NewToolCallResult(string(result), nil), nil
}
