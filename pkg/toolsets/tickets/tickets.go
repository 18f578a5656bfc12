package tickets

import (
	"fmt"
	"net/url"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
)

// credentialSchema builds a tool input schema carrying the credential triple
// plus any tool-specific properties. Credentials are always required; there
// are no implicit defaults.
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

func ticketTools() []api.ServerTool {
	return []api.ServerTool{
		{
			Tool: api.Tool{
				Name:        "list_tickets",
				Description: "List all tickets",
				InputSchema: credentialSchema(nil),
			},
			Handler: listTickets,
		},
		{
			Tool: api.Tool{
				Name:        "get_ticket",
				Description: "Get details for a specific ticket",
				InputSchema: credentialSchema(map[string]*jsonschema.Schema{
					"ticket_id":        {Type: "integer", Description: "Ticket ID"},
					"expand_dropdowns": {Type: "boolean", Description: "Resolve dropdown IDs to their labels"},
				}, "ticket_id"),
			},
			Handler: getTicket,
		},
		{
			Tool: api.Tool{
				Name:        "create_ticket",
				Description: "Create a new ticket",
				InputSchema: credentialSchema(map[string]*jsonschema.Schema{
					"name":    {Type: "string", Description: "Ticket title"},
					"content": {Type: "string", Description: "Ticket description"},
				}, "name", "content"),
			},
			Handler: createTicket,
		},
		{
			Tool: api.Tool{
				Name:        "update_ticket",
				Description: "Update a ticket with the given fields",
				InputSchema: credentialSchema(map[string]*jsonschema.Schema{
					"ticket_id":     {Type: "integer", Description: "Ticket ID"},
					"update_fields": {Type: "object", Description: "Fields to update, passed to GLPI unmodified"},
				}, "ticket_id", "update_fields"),
			},
			Handler: updateTicket,
		},
		{
			Tool: api.Tool{
				Name:        "delete_ticket",
				Description: "Delete a ticket by its ID",
				InputSchema: credentialSchema(map[string]*jsonschema.Schema{
					"ticket_id": {Type: "integer", Description: "Ticket ID"},
				}, "ticket_id"),
			},
			Handler: deleteTicket,
		},
	}
}

func listTickets(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	creds, err := params.Credentials()
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}

	result, err := params.GLPIProvider.Get(params.Context, creds, "/Ticket", nil)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to list tickets: %w", err)), nil
	}

	return api.NewToolCallResult(string(result), nil), nil
}

func getTicket(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	creds, err := params.Credentials()
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	ticketID, err := params.RequireInt("ticket_id")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}

	var query url.Values
	if params.GetBool("expand_dropdowns", false) {
		query = url.Values{"expand_dropdowns": {"true"}}
	}

	result, err := params.GLPIProvider.Get(params.Context, creds, fmt.Sprintf("/Ticket/%d", ticketID), query)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to get ticket %d: %w", ticketID, err)), nil
	}

	return api.NewToolCallResult(string(result), nil), nil
}

func createTicket(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
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

	result, err := params.GLPIProvider.Post(params.Context, creds, "/Ticket", payload)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to create ticket: %w", err)), nil
	}

	return api.NewToolCallResult(string(result), nil), nil
}

func updateTicket(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	creds, err := params.Credentials()
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	ticketID, err := params.RequireInt("ticket_id")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	updateFields := params.GetMap("update_fields")
	if updateFields == nil {
		return api.NewToolCallResult("", fmt.Errorf("update_fields must be an object")), nil
	}

	// update_fields goes through unmodified; GLPI is the sole validator
	payload := map[string]any{"input": updateFields}

	result, err := params.GLPIProvider.Put(params.Context, creds, fmt.Sprintf("/Ticket/%d", ticketID), payload)
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to update ticket %d: %w", ticketID, err)), nil
	}

	return api.NewToolCallResult(string(result), nil), nil
}

func deleteTicket(params api.ToolHandlerParams) (*api.ToolCallResult, error) {
	creds, err := params.Credentials()
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}
	ticketID, err := params.RequireInt("ticket_id")
	if err != nil {
		return api.NewToolCallResult("", err), nil
	}

	result, err := params.GLPIProvider.Delete(params.Context, creds, fmt.Sprintf("/Ticket/%d", ticketID))
	if err != nil {
		return api.NewToolCallResult("", fmt.Errorf("failed to delete ticket %d: %w", ticketID, err)), nil
	}

	return api.NewToolCallResult(string(result), nil), nil
}
