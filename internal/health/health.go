// Package health decides whether the local nutrition server is up by
// probing its health endpoint.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/pders01/fna-context/internal/models"
	"go.uber.org/zap"
)

// ErrUnhealthy is returned when the server answers with a status other than 200
var ErrUnhealthy = errors.New("server unhealthy")

// Probe sends a GET to url and fails unless the server answers 200 OK within
// timeout.
func Probe(ctx context.Context, url string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}

	client := &http.Client{
		Timeout: timeout,
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %d", ErrUnhealthy, url, resp.StatusCode)
	}

	return nil
}

// Check maps the probe result to a server status. Failures are logged, never returned.
func Check(ctx context.Context, logger *zap.Logger, url string, timeout time.Duration) models.ServerStatus {
	if err := Probe(ctx, url, timeout); err != nil {
		logger.Warn("Server probe failed", zap.String("url", url), zap.Error(err))
		return models.StatusStopped
	}
	return models.StatusRunning
}
