package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"flightboard-service/internal/domain/repository"
	"flightboard-service/pkg/logger"
)

// HTTPSheetRepository fetches the published sheet export over plain HTTP.
// The URL is a public CSV publication, no auth involved.
type HTTPSheetRepository struct {
	client     *http.Client
	url        string
	maxRetries uint64
	logger     logger.Logger
}

// NewHTTPSheetRepository creates a sheet repository for a published CSV URL
func NewHTTPSheetRepository(url string, timeout time.Duration, maxRetries int, log logger.Logger) repository.SheetRepository {
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &HTTPSheetRepository{
		client:     &http.Client{Timeout: timeout},
		url:        url,
		maxRetries: uint64(maxRetries),
		logger:     log,
	}
}

// FetchDocument downloads the sheet as raw CSV text. Transient failures
// (network errors, 5xx) are retried with exponential backoff; client
// errors are permanent.
func (r *HTTPSheetRepository) FetchDocument(ctx context.Context) (string, error) {
	var body string

	attempt := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		resp, err := r.client.Do(req)
		if err != nil {
			r.logger.Warn("Sheet fetch attempt failed", "url", r.url, "error", err)
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			err := fmt.Errorf("sheet source returned status %d", resp.StatusCode)
			if resp.StatusCode >= 400 && resp.StatusCode < 500 {
				return backoff.Permanent(err)
			}
			r.logger.Warn("Sheet fetch attempt failed", "url", r.url, "status", resp.StatusCode)
			return err
		}

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}
		body = string(data)
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), r.maxRetries), ctx)
	if err := backoff.Retry(attempt, policy); err != nil {
		return "", err
	}
	return body, nil
}
