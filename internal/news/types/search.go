package types

// SearchRequest represents one finder query.
type SearchRequest struct {
	Query        string `json:"query"`
	MaxResults   int    `json:"max_results"`
	LookbackDays int    `json:"lookback_days"`
	Language     string `json:"language,omitempty"` // defaults to "en"
}

// SearchResponse represents a finder result set. Results keep the API's
// recency order.
type SearchResponse struct {
	Query    string     `json:"query"`
	Results  []Article  `json:"results"`
	Took     int64      `json:"took"` // milliseconds
	Provider ProviderID `json:"provider"`
}

// ProviderID identifies a news-search backend.
type ProviderID string

const (
	ProviderNewsAPI ProviderID = "newsapi"
	ProviderGNews   ProviderID = "gnews"
)

// ProviderConfig represents news-search provider configuration.
type ProviderConfig struct {
	ID      ProviderID `json:"id" yaml:"id"`
	Name    string     `json:"name" yaml:"name"`
	APIHost string     `json:"api_host" yaml:"api_host"`
	APIKey  string     `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	Timeout int        `json:"timeout,omitempty" yaml:"timeout,omitempty"` // seconds
}

// Validate validates the provider configuration.
func (c *ProviderConfig) Validate() error {
	if c.ID == "" {
		return ErrInvalidProviderID
	}
	if c.APIHost == "" {
		return ErrInvalidAPIHost
	}
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
