package tickets

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
)

// providerCall records one invocation against the fake provider
type providerCall struct {
	Op      string
	Creds   api.Credentials
	Path    string
	Params  url.Values
	Payload any
}

// fakeProvider implements api.GLPIProvider, recording calls and returning a
// canned response or error.
type fakeProvider struct {
	calls    []providerCall
	response json.RawMessage
	err      error
}

func (f *fakeProvider) InitSession(_ context.Context, baseURL, appToken, userToken string) (json.RawMessage, error) {
	f.calls = append(f.calls, providerCall{Op: "InitSession", Creds: api.Credentials{BaseURL: baseURL, AppToken: appToken}})
	return f.response, f.err
}

func (f *fakeProvider) KillSession(_ context.Context, creds api.Credentials) (json.RawMessage, error) {
	f.calls = append(f.calls, providerCall{Op: "KillSession", Creds: creds})
	return f.response, f.err
}

func (f *fakeProvider) Get(_ context.Context, creds api.Credentials, path string, params url.Values) (json.RawMessage, error) {
	f.calls = append(f.calls, providerCall{Op: "Get", Creds: creds, Path: path, Params: params})
	return f.response, f.err
}

func (f *fakeProvider) Post(_ context.Context, creds api.Credentials, path string, payload any) (json.RawMessage, error) {
	f.calls = append(f.calls, providerCall{Op: "Post", Creds: creds, Path: path, Payload: payload})
	return f.response, f.err
}

func (f *fakeProvider) Put(_ context.Context, creds api.Credentials, path string, payload any) (json.RawMessage, error) {
	f.calls = append(f.calls, providerCall{Op: "Put", Creds: creds, Path: path, Payload: payload})
	return f.response, f.err
}

func (f *fakeProvider) Delete(_ context.Context, creds api.Credentials, path string) (json.RawMessage, error) {
	f.calls = append(f.calls, providerCall{Op: "Delete", Creds: creds, Path: path})
	return f.response, f.err
}

// fakeRequest implements api.ToolCallRequest
type fakeRequest struct {
	args map[string]any
}

func (f *fakeRequest) GetArguments() map[string]any {
	return f.args
}

func handlerParams(provider api.GLPIProvider, args map[string]any) api.ToolHandlerParams {
	return api.ToolHandlerParams{
		Context:         context.Background(),
		GLPIProvider:    provider,
		ToolCallRequest: &fakeRequest{args: args},
	}
}

func credentialArgs(extra map[string]any) map[string]any {
	args := map[string]any{
		"base_url":      "http://glpi.local",
		"app_token":     "app",
		"session_token": "sess",
	}
	for k, v := range extra {
		args[k] = v
	}
	return args
}

func findHandler(t *testing.T, name string) api.ToolHandlerFunc {
	t.Helper()
	for _, tool := range ticketTools() {
		if tool.Tool.Name == name {
			return tool.Handler
		}
	}
	t.Fatalf("tool %s not found", name)
	return nil
}

func TestToolsetTools(t *testing.T) {
	toolset := &Toolset{}
	assert.Equal(t, "tickets", toolset.Name())

	names := []string{}
	for _, tool := range toolset.GetTools() {
		names = append(names, tool.Tool.Name)
	}
	assert.Equal(t, []string{"list_tickets", "get_ticket", "create_ticket", "update_ticket", "delete_ticket"}, names)
}

func TestListTickets(t *testing.T) {
	provider := &fakeProvider{response: json.RawMessage(`[{"id":1}]`)}

	result, err := findHandler(t, "list_tickets")(handlerParams(provider, credentialArgs(nil)))
	require.NoError(t, err)
	require.NoError(t, result.Error)
	assert.Equal(t, `[{"id":1}]`, result.Content)

	require.Len(t, provider.calls, 1)
	call := provider.calls[0]
	assert.Equal(t, "Get", call.Op)
	assert.Equal(t, "/Ticket", call.Path)
	assert.Equal(t, "http://glpi.local", call.Creds.BaseURL)
	assert.Equal(t, "app", call.Creds.AppToken)
	assert.Equal(t, "sess", call.Creds.SessionToken)
}

func TestGetTicket(t *testing.T) {
	provider := &fakeProvider{response: json.RawMessage(`{"id":42}`)}

	result, err := findHandler(t, "get_ticket")(handlerParams(provider, credentialArgs(map[string]any{
		"ticket_id": float64(42),
	})))
	require.NoError(t, err)
	require.NoError(t, result.Error)
	assert.Equal(t, `{"id":42}`, result.Content)

	require.Len(t, provider.calls, 1)
	assert.Equal(t, "/Ticket/42", provider.calls[0].Path)
	assert.Nil(t, provider.calls[0].Params)
}

func TestGetTicketExpandDropdowns(t *testing.T) {
	provider := &fakeProvider{response: json.RawMessage(`{}`)}

	_, err := findHandler(t, "get_ticket")(handlerParams(provider, credentialArgs(map[string]any{
		"ticket_id":        float64(7),
		"expand_dropdowns": true,
	})))
	require.NoError(t, err)

	require.Len(t, provider.calls, 1)
	assert.Equal(t, "true", provider.calls[0].Params.Get("expand_dropdowns"))
}

func TestCreateTicket(t *testing.T) {
	provider := &fakeProvider{response: json.RawMessage(`{"id":101}`)}

	result, err := findHandler(t, "create_ticket")(handlerParams(provider, credentialArgs(map[string]any{
		"name":    "Printer broken",
		"content": "Toner empty",
	})))
	require.NoError(t, err)
	require.NoError(t, result.Error)
	assert.Equal(t, `{"id":101}`, result.Content)

	require.Len(t, provider.calls, 1)
	call := provider.calls[0]
	assert.Equal(t, "Post", call.Op)
	assert.Equal(t, "/Ticket", call.Path)
	assert.Equal(t, map[string]any{
		"input": map[string]any{
			"name":    "Printer broken",
			"content": "Toner empty",
		},
	}, call.Payload)
}

func TestUpdateTicketPassThrough(t *testing.T) {
	provider := &fakeProvider{response: json.RawMessage(`{"42":true}`)}

	result, err := findHandler(t, "update_ticket")(handlerParams(provider, credentialArgs(map[string]any{
		"ticket_id": float64(42),
		"update_fields": map[string]any{
			"status": float64(5),
		},
	})))
	require.NoError(t, err)
	require.NoError(t, result.Error)

	require.Len(t, provider.calls, 1)
	call := provider.calls[0]
	assert.Equal(t, "Put", call.Op)
	assert.Equal(t, "/Ticket/42", call.Path)
	assert.Equal(t, map[string]any{
		"input": map[string]any{"status": float64(5)},
	}, call.Payload)
}

func TestUpdateTicketRejectsNonObjectFields(t *testing.T) {
	provider := &fakeProvider{}

	result, err := findHandler(t, "update_ticket")(handlerParams(provider, credentialArgs(map[string]any{
		"ticket_id":     float64(42),
		"update_fields": "status=5",
	})))
	require.NoError(t, err)
	require.Error(t, result.Error)
	assert.Empty(t, provider.calls)
}

func TestDeleteTicket(t *testing.T) {
	provider := &fakeProvider{response: json.RawMessage(`[{"42":true}]`)}

	result, err := findHandler(t, "delete_ticket")(handlerParams(provider, credentialArgs(map[string]any{
		"ticket_id": float64(42),
	})))
	require.NoError(t, err)
	require.NoError(t, result.Error)

	require.Len(t, provider.calls, 1)
	assert.Equal(t, "Delete", provider.calls[0].Op)
	assert.Equal(t, "/Ticket/42", provider.calls[0].Path)
}

func TestMissingSessionTokenIssuesNoRequest(t *testing.T) {
	provider := &fakeProvider{}

	args := credentialArgs(nil)
	delete(args, "session_token")

	result, err := findHandler(t, "list_tickets")(handlerParams(provider, args))
	require.NoError(t, err)
	require.Error(t, result.Error)
	assert.ErrorContains(t, result.Error, "session_token is required")
	assert.Empty(t, provider.calls)
}

func TestRemoteFailureSurfacesAsToolError(t *testing.T) {
	provider := &fakeProvider{err: fmt.Errorf("GET http://glpi.local/apirest.php/Ticket: status 401")}

	result, err := findHandler(t, "list_tickets")(handlerParams(provider, credentialArgs(nil)))
	require.NoError(t, err)
	require.Error(t, result.Error)
	assert.ErrorContains(t, result.Error, "status 401")
	assert.Empty(t, result.Content)
}
