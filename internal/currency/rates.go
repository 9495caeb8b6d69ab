package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/OmMTelrandhe/Paisa-Controller/internal/common"
)

// DefaultAPIURL is the free exchange-rate endpoint, queried with the base
// currency appended.
const DefaultAPIURL = "https://open.er-api.com/v6/latest"

// RefreshInterval is how often the background refresher re-fetches rates.
const RefreshInterval = time.Hour

// fallbackRates anchors conversion when the rate API is unreachable.
var fallbackRates = map[string]float64{
	"INR": 1,
	"USD": 0.012,
	"EUR": 0.011,
	"GBP": 0.0095,
	"JPY": 1.81,
	"CAD": 0.016,
	"AUD": 0.018,
	"CNY": 0.087,
	"BRL": 0.061,
	"MXN": 0.20,
}

// Rates holds exchange rates keyed by currency code, relative to the base
// currency, and converts amounts through them. Safe for concurrent use.
type Rates struct {
	client      *http.Client
	apiURL      string
	rates       map[string]float64
	lastUpdated time.Time
	mu          sync.RWMutex
}

// RatesOption configures a Rates instance.
type RatesOption func(*Rates)

// WithAPIURL overrides the rate API endpoint, for tests.
func WithAPIURL(url string) RatesOption {
	return func(r *Rates) {
		r.apiURL = url
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) RatesOption {
	return func(r *Rates) {
		r.client = client
	}
}

// NewRates creates a rate table with no rates loaded; amounts pass through
// unconverted until the first Refresh.
func NewRates(opts ...RatesOption) *Rates {
	r := &Rates{
		client: &http.Client{Timeout: 10 * time.Second},
		apiURL: DefaultAPIURL,
		rates:  make(map[string]float64),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type ratesResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Refresh fetches the latest rates for the base currency, retrying with
// backoff. On persistent failure the static fallback table is installed so
// conversion keeps working.
func (r *Rates) Refresh(ctx context.Context) error {
	var fetched map[string]float64

	err := common.WithRetry(ctx, func() error {
		rates, fetchErr := r.fetch(ctx)
		if fetchErr != nil {
			return fetchErr
		}
		fetched = rates
		return nil
	}, common.RetryOptions{MaxAttempts: 3, InitialDelay: 500 * time.Millisecond})

	now := time.Now()
	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		slog.Warn("falling back to static exchange rates", "error", err)
		r.rates = fallbackRates
		r.lastUpdated = now
		return fmt.Errorf("%w: %v", common.ErrRatesUnavailable, err)
	}

	r.rates = fetched
	r.lastUpdated = now
	slog.Info("refreshed exchange rates", "count", len(fetched), "base", BaseCurrency)
	return nil
}

func (r *Rates) fetch(ctx context.Context) (map[string]float64, error) {
	url := fmt.Sprintf("%s/%s", r.apiURL, BaseCurrency)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rates request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, common.ErrRateLimit
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rates API returned status %d", resp.StatusCode)
	}

	var body ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode rates response: %w", err)
	}
	if len(body.Rates) == 0 {
		return nil, fmt.Errorf("rates response carried no rates")
	}
	return body.Rates, nil
}

// KeepFresh refreshes rates on an interval until the context is canceled.
func (r *Rates) KeepFresh(ctx context.Context) {
	ticker := time.NewTicker(RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.Refresh(ctx); err != nil {
				slog.Warn("scheduled rate refresh failed", "error", err)
			}
		}
	}
}

// Convert translates an amount between currencies via the base currency.
// With no rates loaded, or unknown codes, the amount passes through at 1:1.
func (r *Rates) Convert(amount float64, from, to string) float64 {
	if from == to {
		return amount
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.rates) == 0 {
		return amount
	}

	fromRate, ok := r.rates[from]
	if !ok {
		fromRate = 1
	}
	toRate, ok := r.rates[to]
	if !ok {
		toRate = 1
	}

	return amount / fromRate * toRate
}

// ToBase converts an amount from the given currency into the base currency.
func (r *Rates) ToBase(amount float64, from string) float64 {
	return r.Convert(amount, from, BaseCurrency)
}

// LastUpdated reports when rates were last installed; zero before the first
// refresh.
func (r *Rates) LastUpdated() time.Time {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.lastUpdated
}

// Snapshot returns a copy of the current rate table.
func (r *Rates) Snapshot() map[string]float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]float64, len(r.rates))
	for code, rate := range r.rates {
		out[code] = rate
	}
	return out
}
