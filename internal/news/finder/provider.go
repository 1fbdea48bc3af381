package finder

import (
	"context"
	"net/http"
	"time"

	"github.com/rapidreads/rapidreads-backend/internal/news/types"
)

// Provider defines the interface for news-search backends.
type Provider interface {
	// Search executes one search query. Results keep the API's recency
	// order and never contain an article without a URL.
	Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error)

	// GetID returns the provider ID
	GetID() types.ProviderID

	// GetName returns the provider name
	GetName() string

	// Validate validates the provider configuration
	Validate() error
}

// BaseProvider provides common functionality for all providers.
type BaseProvider struct {
	config     *types.ProviderConfig
	httpClient *http.Client
}

// NewBaseProvider creates a new base provider.
func NewBaseProvider(config *types.ProviderConfig) *BaseProvider {
	timeout := time.Duration(config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	return &BaseProvider{
		config:     config,
		httpClient: httpClient,
	}
}

// GetID returns the provider ID
func (b *BaseProvider) GetID() types.ProviderID {
	return b.config.ID
}

// GetName returns the provider name
func (b *BaseProvider) GetName() string {
	return b.config.Name
}

// GetConfig returns the provider configuration
func (b *BaseProvider) GetConfig() *types.ProviderConfig {
	return b.config
}

// GetAPIKey returns the configured API key
func (b *BaseProvider) GetAPIKey() string {
	return b.config.APIKey
}

// DoRequest executes an HTTP request. A failed search is fatal to the whole
// report request, so there is deliberately no retry here.
func (b *BaseProvider) DoRequest(ctx context.Context, req *http.Request) (*http.Response, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "RapidReads/1.0")
	return b.httpClient.Do(req.WithContext(ctx))
}

// Validate validates the provider configuration
func (b *BaseProvider) Validate() error {
	return b.config.Validate()
}

// searchWindowStart returns the ISO date bounding the lookback window.
func searchWindowStart(lookbackDays int) string {
	if lookbackDays < 0 {
		lookbackDays = 0
	}
	return time.Now().AddDate(0, 0, -lookbackDays).Format("2006-01-02")
}
