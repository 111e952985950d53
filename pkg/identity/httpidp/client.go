// Package httpidp provides an identity.Provider implementation backed by the
// identity provider's HTTP admin API.
package httpidp

import (
	"adminops/pkg/domain"
	"adminops/pkg/identity"
	"adminops/pkg/serrors"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the identity provider's admin REST API and fulfills the
// identity.Provider interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the admin API
	baseURL    string       // baseURL is the admin API root, e.g. "https://idp.internal"
	token      string       // token is the service account bearer token
}

// DeleteUser issues a DELETE for the given user's authentication identity.
// A 404 response is reported as a serrors.ErrNotFound kind so callers can
// treat an already-removed identity as a non-error.
func (c *Client) DeleteUser(ctx context.Context, id domain.UserID) error {
	endpoint := fmt.Sprintf("%s/admin/v1/users/%s",
		strings.TrimRight(c.baseURL, "/"),
		url.PathEscape(string(id)))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return serrors.With(serrors.ErrNotFound, "identity not found")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("delete identity failed: %s", strings.TrimSpace(string(b)))
	}

	return nil
}

// Ensure Client conforms to the identity.Provider interface at compile time.
var _ identity.Provider = (*Client)(nil)

// New constructs a Client that uses the provided http.Client, admin API base
// URL and service token.
func New(httpClient *http.Client, baseURL, token string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		token:      token,
	}
}
