package api

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// ServerTool represents a tool that can be registered with the MCP server
type ServerTool struct {
	Tool    Tool            // Tool metadata and schema
	Handler ToolHandlerFunc // Function to execute the tool
}

// Tool represents a tool definition
type Tool struct {
	Name        string
	Description string
	InputSchema *jsonschema.Schema
}

// Toolset represents a collection of related tools
type Toolset interface {
	// Name returns the toolset name
	Name() string

	// GetTools returns all tools in this toolset
	GetTools() []ServerTool
}

// ToolCallRequest provides access to tool call arguments
type ToolCallRequest interface {
	GetArguments() map[string]any
}

// ToolCallResult represents the result of a tool call
type ToolCallResult struct {
	Content string
	Error   error
}

// NewToolCallResult creates a new ToolCallResult
func NewToolCallResult(content string, err error) *ToolCallResult {
	return &ToolCallResult{
		Content: content,
		Error:   err,
	}
}

// ToolHandlerFunc is the signature for tool handler functions
type ToolHandlerFunc func(params ToolHandlerParams) (*ToolCallResult, error)

// ToolHandlerParams contains all parameters passed to a tool handler
type ToolHandlerParams struct {
	context.Context
	GLPIProvider    GLPIProvider
	ToolCallRequest ToolCallRequest
}

// GetString returns a string argument value with default
func (p ToolHandlerParams) GetString(key, defaultValue string) string {
	args := p.ToolCallRequest.GetArguments()
	if val, ok := args[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return defaultValue
}

// RequireString returns a string argument value, erroring when it is missing or
// empty. Credentials have no implicit defaults.
func (p ToolHandlerParams) RequireString(key string) (string, error) {
	val := p.GetString(key, "")
	if val == "" {
		return "", fmt.Errorf("%s is required", key)
	}
	return val, nil
}

// GetBool returns a boolean argument value with default
func (p ToolHandlerParams) GetBool(key string, defaultValue bool) bool {
	args := p.ToolCallRequest.GetArguments()
	if val, ok := args[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return defaultValue
}

// GetInt returns an int argument value with default. MCP clients deliver numbers
// as float64 and some send numeric strings; both are accepted.
func (p ToolHandlerParams) GetInt(key string, defaultValue int) int {
	args := p.ToolCallRequest.GetArguments()
	if val, ok := args[key]; ok {
		switch v := val.(type) {
		case int:
			return v
		case float64:
			return int(v)
		case string:
			var n int
			if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
				return n
			}
		}
	}
	return defaultValue
}

// RequireInt returns an int argument value, erroring when it is missing or not
// numeric.
func (p ToolHandlerParams) RequireInt(key string) (int, error) {
	args := p.ToolCallRequest.GetArguments()
	val, ok := args[key]
	if !ok {
		return 0, fmt.Errorf("%s is required", key)
	}
	switch v := val.(type) {
	case int:
		return v, nil
	case float64:
		return int(v), nil
	case string:
		var n int
		if _, err := fmt.Sscanf(v, "%d", &n); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%s must be a number", key)
}

// GetMap returns an object argument value, or nil when absent or not an object
func (p ToolHandlerParams) GetMap(key string) map[string]any {
	args := p.ToolCallRequest.GetArguments()
	if val, ok := args[key]; ok {
		if m, ok := val.(map[string]any); ok {
			return m
		}
	}
	return nil
}

// Credentials extracts the base_url/app_token/session_token triple every
// resource tool requires.
func (p ToolHandlerParams) Credentials() (Credentials, error) {
	baseURL, err := p.RequireString("base_url")
	if err != nil {
		return Credentials{}, err
	}
	appToken, err := p.RequireString("app_token")
	if err != nil {
		return Credentials{}, err
	}
	sessionToken, err := p.RequireString("session_token")
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{
		BaseURL:      baseURL,
		AppToken:     appToken,
		SessionToken: sessionToken,
	}, nil
}
