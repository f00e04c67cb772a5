package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"printer-agent/internal/core/config"
	"printer-agent/internal/core/httpclient"
	"printer-agent/internal/features/labels/domain"
)

// HantarAdapter implements the JobProvider interface against the Hantar
// order-management REST API.
type HantarAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the API connection details.
	config config.APIConfig
}

// NewHantarAdapter creates a new instance of HantarAdapter.
func NewHantarAdapter(cfg config.APIConfig) *HantarAdapter {
	return &HantarAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// pendingResponse is the wire shape of the pending-jobs endpoint.
type pendingResponse struct {
	// Count is the number of orders waiting.
	Count int `json:"count"`
	// Orders are the pending orders, oldest first.
	Orders []domain.Order `json:"orders"`
}

// PendingJobs fetches the orders currently waiting to be printed.
func (a *HantarAdapter) PendingJobs(ctx context.Context) ([]domain.Order, error) {
	url := fmt.Sprintf("%s/print-jobs/pending", strings.TrimRight(a.config.URL, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending jobs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pending jobs request returned status: %d", resp.StatusCode)
	}

	var pending pendingResponse
	if err := json.NewDecoder(resp.Body).Decode(&pending); err != nil {
		return nil, fmt.Errorf("failed to decode pending jobs: %w", err)
	}

	return pending.Orders, nil
}

// MarkPrinted acknowledges one order as printed.
func (a *HantarAdapter) MarkPrinted(ctx context.Context, orderID int) error {
	url := fmt.Sprintf("%s/print-jobs/%d/mark-printed", strings.TrimRight(a.config.URL, "/"), orderID)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	a.authorize(req)

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to mark order %d printed: %w", orderID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("mark-printed for order %d returned status: %d", orderID, resp.StatusCode)
	}

	return nil
}

// HealthCheck verifies that the API is reachable and the token is accepted.
func (a *HantarAdapter) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := a.PendingJobs(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	return nil
}

// authorize attaches the bearer token. The token is always present: config
// loading refuses to start without one.
func (a *HantarAdapter) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.config.Token)
}
