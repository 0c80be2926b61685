package egeria

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/cenkalti/backoff/v5"

	"github.com/stacklok/egeria-client-go/internal/versions"
	"github.com/stacklok/egeria-client-go/pkg/httpclient"
)

// OriginURL is the platform-services endpoint describing the running platform
func (c *Client) OriginURL() string {
	return fmt.Sprintf("%s/open-metadata/platform-services/users/%s/server-platform/origin",
		c.cfg.platformURL(), url.PathEscape(c.cfg.UserID))
}

// PlatformOrigin returns the platform's description of itself, for example
// "Egeria OMAG Server Platform (version 5.4)"
func (c *Client) PlatformOrigin(ctx context.Context) (string, error) {
	if err := RequireName("userID", c.cfg.UserID); err != nil {
		return "", err
	}
	data, err := c.http.Get(ctx, c.OriginURL())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// PlatformVersion reads the origin and checks the version it reports against
// constraint (versions.MinimumPlatformVersion when empty)
func (c *Client) PlatformVersion(ctx context.Context, constraint string) (*semver.Version, bool, error) {
	origin, err := c.PlatformOrigin(ctx)
	if err != nil {
		return nil, false, err
	}
	v, err := versions.ParsePlatformVersion(origin)
	if err != nil {
		return nil, false, err
	}
	ok, err := versions.CheckPlatformVersion(v, constraint)
	if err != nil {
		return nil, false, err
	}
	return v, ok, nil
}

// WaitForPlatform polls the platform origin with exponential backoff until it
// answers, maxWait passes or ctx is done. Only connection failures and 5xx answers
// are retried.
func (c *Client) WaitForPlatform(ctx context.Context, maxWait time.Duration) (string, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 250 * time.Millisecond
	b.MaxInterval = 5 * time.Second

	attempt := 0
	origin, err := backoff.Retry(ctx, func() (string, error) {
		attempt++
		origin, err := c.PlatformOrigin(ctx)
		if err == nil {
			return origin, nil
		}
		if !retryable(err) {
			return "", backoff.Permanent(err)
		}
		slog.Debug("Platform not ready", "url", c.OriginURL(), "attempt", attempt, "error", err)
		return "", err
	},
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(maxWait),
	)
	if err != nil {
		return "", fmt.Errorf("platform at %s not ready after %d attempts: %w", c.cfg.PlatformURL, attempt, err)
	}
	slog.Info("Platform ready", "url", c.cfg.PlatformURL, "origin", origin)
	return origin, nil
}

func retryable(err error) bool {
	var connErr *httpclient.ConnectionError
	if errors.As(err, &connErr) {
		return true
	}
	var apiErr *httpclient.APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode >= 500
}
