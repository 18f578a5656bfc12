package glpi

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/moteaz/GLPI-mcp.tools/pkg/api"
)

// InitSession performs the one-shot authentication handshake: a single GET to
// {base}/apirest.php/initSession authenticated with the app token and a
// user token. The raw response is returned without parsing the session-token
// key out of it; callers carry the token into subsequent calls themselves.
func InitSession(ctx context.Context, baseURL, appToken, userToken string, logger logrus.FieldLogger) (json.RawMessage, error) {
	requestURL := strings.TrimRight(baseURL, "/") + apiPrefix + "/initSession"

	headers := map[string]string{
		"App-Token":     appToken,
		"Authorization": "user_token " + userToken,
		"Content-Type":  "application/json",
	}

	return execute(ctx, newHTTPClient(), logger, http.MethodGet, requestURL, headers, nil)
}

// KillSession invalidates a session token. GLPI answers with an empty body on
// success.
func KillSession(ctx context.Context, creds api.Credentials, logger logrus.FieldLogger) (json.RawMessage, error) {
	return NewClient(creds, logger).Get(ctx, "/killSession", nil)
}
