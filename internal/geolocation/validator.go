// Package geolocation checks street names against the OpenStreetMap
// Nominatim API. It is a collaborator of the catalog, not part of it: the
// catalog never blocks on network lookups.
package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/AnDrELuIzzz/RealStateNeeds/internal/platform/logger"
)

type Validator struct {
	baseURL      string
	neighborhood string
	httpClient   *http.Client
	logger       *logger.Logger

	// Nominatim's usage policy caps request rate, so calls are spaced by a
	// fixed minimum delay.
	mu       sync.Mutex
	minDelay time.Duration
	lastCall time.Time
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

func NewValidator(baseURL, neighborhood string, minDelay time.Duration, log *logger.Logger) *Validator {
	return &Validator{
		baseURL:      baseURL,
		neighborhood: neighborhood,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		logger:       log,
		minDelay:     minDelay,
	}
}

// StreetExists queries Nominatim for the street inside the configured
// neighborhood and reports whether any result came back.
func (v *Validator) StreetExists(ctx context.Context, street string) (bool, error) {
	v.throttle()

	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s, %s, São Paulo, Brazil", street, v.neighborhood))
	query.Set("format", "json")
	query.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/search?%s", v.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false, fmt.Errorf("failed to build nominatim request: %w", err)
	}
	// Nominatim requires an identifying User-Agent
	req.Header.Set("User-Agent", "property-catalog-service/1.0")

	resp, err := v.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("nominatim request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return false, fmt.Errorf("failed to decode nominatim response: %w", err)
	}

	v.logger.Debug("Validator.StreetExists: lookup finished",
		"street", street, "results", len(results))
	return len(results) > 0, nil
}

func (v *Validator) throttle() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if wait := v.minDelay - time.Since(v.lastCall); wait > 0 {
		time.Sleep(wait)
	}
	v.lastCall = time.Now()
}
