package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/cuemby/cookshow/pkg/metrics"
)

// HTTPChecker probes a /health or /ready endpoint and decodes its body
type HTTPChecker struct {
	// URL is the full endpoint, e.g. "http://localhost:8080/ready"
	URL string

	// Client is the HTTP client to use
	Client *http.Client
}

// NewHTTPChecker creates a checker for url
func NewHTTPChecker(url string) *HTTPChecker {
	return &HTTPChecker{
		URL:    url,
		Client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Endpoint builds a checker for path on the server at addr ("host:port" or URL)
func Endpoint(addr, path string) *HTTPChecker {
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	return NewHTTPChecker(strings.TrimRight(addr, "/") + path)
}

// Name returns the probed URL
func (h *HTTPChecker) Name() string {
	return h.URL
}

// Check performs one request. Any 2xx answer is healthy; the JSON body, when
// present, fills Status and Message.
func (h *HTTPChecker) Check(ctx context.Context) Result {
	start := time.Now()
	fail := func(format string, args ...interface{}) Result {
		return Result{
			Healthy:   false,
			Message:   fmt.Sprintf(format, args...),
			CheckedAt: start,
			Duration:  time.Since(start),
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL, nil)
	if err != nil {
		return fail("failed to create request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := h.Client.Do(req)
	if err != nil {
		return fail("request failed: %v", err)
	}
	defer resp.Body.Close()

	result := Result{
		Healthy:   resp.StatusCode >= 200 && resp.StatusCode < 300,
		Message:   fmt.Sprintf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
		CheckedAt: start,
	}

	var body metrics.HealthStatus
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil {
		result.Status = body.Status
		if body.Message != "" {
			result.Message = body.Message
		}
	}
	result.Duration = time.Since(start)
	return result
}
