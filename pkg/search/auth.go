package search

import (
	"context"
	"errors"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/pario-ai/tagtally/pkg/config"
)

// ErrNoCredentials is returned when neither a bearer token nor an API
// key/secret pair is configured.
var ErrNoCredentials = errors.New("no search credentials configured: set auth.bearer_token or auth.api_key and auth.api_secret")

// VerifyCredentials reports whether cfg carries usable credentials.
func VerifyCredentials(cfg config.AuthConfig) error {
	if cfg.BearerToken != "" {
		return nil
	}
	if cfg.APIKey == "" || cfg.APISecret == "" {
		return ErrNoCredentials
	}
	if cfg.TokenURL == "" {
		return errors.New("auth.token_url must be set when using an API key")
	}
	return nil
}

// NewHTTPClient returns an HTTP client that authorizes requests with an
// application-only bearer token. A configured token is used as is; otherwise
// the key/secret pair is exchanged with the client-credentials grant on the
// first request.
func NewHTTPClient(ctx context.Context, cfg config.AuthConfig, timeout time.Duration) (*http.Client, error) {
	if err := VerifyCredentials(cfg); err != nil {
		return nil, err
	}

	var client *http.Client
	if cfg.BearerToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{
			AccessToken: cfg.BearerToken,
			TokenType:   "Bearer",
		})
		client = oauth2.NewClient(ctx, src)
	} else {
		cc := &clientcredentials.Config{
			ClientID:     cfg.APIKey,
			ClientSecret: cfg.APISecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		}
		client = cc.Client(ctx)
	}
	client.Timeout = timeout
	return client, nil
}
