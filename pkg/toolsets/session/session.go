package session

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
)

func sessionTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "init_session",
				Description: "Authenticate with GLPI and return the session token",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"base_url":   {Type: "string", Description: "Base URL of the GLPI deployment (e.g. https://glpi.example.com)"},
						"app_token":  {Type: "string", Description: "GLPI application token (App-Token header)"},
						"user_token": {Type: "string", Description: "GLPI user API token used for the handshake"},
					},
					Required: []string{"base_url", "app_token", "user_token"},
				},
			},
			Handler: initSession,
		},
		{
			Tool: api.Tool{
				Name:        "kill_session",
				Description: "Invalidate a GLPI session token",
				InputSchema: &jsonschema.Schema{
					Type: "object",
					Properties: map[string]*jsonschema.Schema{
						"base_url":      {Type: "string", Description: "Base URL of the GLPI deployment"},
						"app_token":     {Type: "string", Description: "GLPI application token (App-Token header)"},
						"session_token": {Type: "string", Description: "Session token to invalidate"},
					},
					Required: []string{"base_url", "app_token", "session_token"},
				},
			},
			Handler: killSession,
		},
	}
}

func initSession(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	baseURL, err := params.RequireString("base_url")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	appToken, err := params.RequireString("app_token")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	userToken, err := params.RequireString("user_token")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}

	result, err := params.GLPIProvider.InitSession(params.Context, baseURL, appToken, userToken)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to initialize session: %w", err)), nil
	}

	return api.NewToolCallResult(string(result), nil), nil
}

func killSession(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	creds, err := params.Credentials()
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}

	result, err := params.GLPIProvider.KillSession(params.Context, creds)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to kill session: %w", err)), nil
	}

	// GLPI answers with an empty body once the session is gone
	if len(result) == 0 {
		return api.NewToolCallResult("session terminated", nil), nil
	}
	return api.NewToolCallResult(string(result), nil), nil
}
