// Package glpi implements the thin REST layer over a GLPI deployment's
// /apirest.php endpoint: the session handshake and the four verb operations
// the toolsets compose. Responses are passed through verbatim; GLPI is the
// sole validator of request and response shapes.
package glpi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
)

const apiPrefix = "/apirest.php"

// errorBodyLimit caps how much of a failing response body is kept for the
// error message and log line.
const errorBodyLimit = 2048

// Client performs requests against one GLPI deployment with a fixed
// credential triple. It is request-scoped: build one per call from the
// caller-supplied credentials and discard it.
type Client struct {
	baseURL      string
	appToken     string
	sessionToken string
	httpClient   *http.Client
	logger       logrus.FieldLogger
}

// NewClient creates a client bound to the given credentials. The base URL's
// trailing slashes are stripped. Keep-alives are disabled so every call opens
// and tears down its own connection.
func NewClient(creds api.Credentials, logger logrus.FieldLogger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(creds.BaseURL, "/"),
		appToken:     creds.AppToken,
		sessionToken: creds.SessionToken,
		httpClient:   newHTTPClient(),
		logger:       logger,
	}
}

func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{DisableKeepAlives: true},
	}
}

// Get issues a GET against the resource path with optional query parameters
func (c *Client) Get(ctx context.Context, path string, params url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, params, nil)
}

// Post issues a POST with the payload serialized as the JSON body
func (c *Client) Post(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, nil, payload)
}

// Put issues a PUT with the payload serialized as the JSON body
func (c *Client) Put(ctx context.Context, path string, payload any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, nil, payload)
}

// Delete issues a DELETE against the resource path, no body
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, verb, path string, params url.Values, payload any) (json.RawMessage, error) {
	requestURL := c.baseURL + apiPrefix + path
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s %s payload: %w", verb, requestURL, err)
		}
	}

	headers := map[string]string{
		"App-Token":     c.appToken,
		"Session-Token": c.sessionToken,
		"Content-Type":  "application/json",
	}

	return execute(ctx, c.httpClient, c.logger, verb, requestURL, headers, body)
}

// execute runs a single HTTP request and applies the uniform error contract:
// any transport failure, non-2xx status, or non-JSON body becomes a
// *RemoteCallError, logged once and returned unchanged. The response body is
// handed back verbatim.
func execute(ctx context.Context, httpClient *http.Client, logger logrus.FieldLogger, verb, requestURL string, headers map[string]string, body []byte) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, verb, requestURL, reader)
	if err != nil {
		return nil, failure(logger, &RemoteCallError{Verb: verb, URL: requestURL, Err: err})
	}
	for name, value := range headers {
		req.Header.Set(name, value)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, failure(logger, &RemoteCallError{Verb: verb, URL: requestURL, Err: err})
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, failure(logger, &RemoteCallError{Verb: verb, URL: requestURL, Err: err})
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, failure(logger, &RemoteCallError{
			Verb:       verb,
			URL:        requestURL,
			StatusCode: resp.StatusCode,
			Body:       truncate(string(respBody), errorBodyLimit),
		})
	}

	// GLPI returns an empty body on some calls (killSession); anything else
	// must at least be well-formed JSON.
	if len(respBody) > 0 && !json.Valid(respBody) {
		return nil, failure(logger, &RemoteCallError{
			Verb:       verb,
			URL:        requestURL,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("malformed JSON response body"),
		})
	}

	return json.RawMessage(respBody), nil
}

// failure logs a remote call error once, then returns it unchanged
func failure(logger logrus.FieldLogger, callErr *RemoteCallError) error {
	fields := logrus.Fields{
		"verb": callErr.Verb,
		"url":  callErr.URL,
	}
	if callErr.StatusCode != 0 {
		fields["status"] = callErr.StatusCode
	}
	if callErr.Err != nil {
		fields["error"] = callErr.Err
	}
	logger.WithFields(fields).Error("GLPI request failed")
	return callErr
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
