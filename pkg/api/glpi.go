package api

import (
	"context"
	"encoding/json"
	"net/url"
)

// Credentials identifies a GLPI deployment and the tokens sent on every request.
// A trailing slash on BaseURL is stripped before use.
type Credentials struct {
	BaseURL      string
	AppToken     string
	SessionToken string
}

// GLPIProvider abstracts access to the GLPI REST API
type GLPIProvider interface {
	// Session lifecycle
	InitSession(ctx context.Context, baseURL, appToken, userToken string) (json.RawMessage, error)
	KillSession(ctx context.Context, creds Credentials) (json.RawMessage, error)

	// Resource access; path is the suffix after /apirest.php (e.g. "/Ticket/42")
	Get(ctx context.Context, creds Credentials, path string, params url.Values) (json.RawMessage, error)
	Post(ctx context.Context, creds Credentials, path string, payload any) (json.RawMessage, error)
	Put(ctx context.Context, creds Credentials, path string, payload any) (json.RawMessage, error)
	Delete(ctx context.Context, creds Credentials, path string) (json.RawMessage, error)
}
