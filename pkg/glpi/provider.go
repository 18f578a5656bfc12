package glpi

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/sirupsen/logrus"

	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
)

// Provider implements the GLPIProvider interface. It holds no business state:
// credentials arrive with every call and each operation builds a
// request-scoped client from them.
type Provider struct {
	logger logrus.FieldLogger
}

var _ api.GLPIProvider = (*Provider)(nil)

// NewProvider creates a new GLPI provider
func NewProvider(logger logrus.FieldLogger) *Provider {
	return &Provider{logger: logger}
}

// InitSession performs the authentication handshake
func (p *Provider) InitSession(ctx context.Context, baseURL, appToken, userToken string) (json.RawMessage, error) {
	return InitSession(ctx, baseURL, appToken, userToken, p.logger)
}

// KillSession invalidates a session token
func (p *Provider) KillSession(ctx context.Context, creds api.Credentials) (json.RawMessage, error) {
	return KillSession(ctx, creds, p.logger)
}

// Get issues a GET against the resource path
func (p *Provider) Get(ctx context.Context, creds api.Credentials, path string, params url.Values) (json.RawMessage, error) {
	return NewClient(creds, p.logger).Get(ctx, path, params)
}

// Post issues a POST with a JSON body
func (p *Provider) Post(ctx context.Context, creds api.Credentials, path string, payload any) (json.RawMessage, error) {
	return NewClient(creds, p.logger).Post(ctx, path, payload)
}

// Put issues a PUT with a JSON body
func (p *Provider) Put(ctx context.Context, creds api.Credentials, path string, payload any) (json.RawMessage, error) {
	return NewClient(creds, p.logger).Put(ctx, path, payload)
}

// Delete issues a DELETE against the resource path
func (p *Provider) Delete(ctx context.Context, creds api.Credentials, path string) (json.RawMessage, error) {
	return NewClient(creds, p.logger).Delete(ctx, path)
}
