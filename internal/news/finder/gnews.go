package finder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rapidreads/rapidreads-backend/internal/news/types"
)

// GNewsProvider implements the GNews.io search endpoint.
type GNewsProvider struct {
	*BaseProvider
}

// NewGNewsProvider creates a new GNews provider.
func NewGNewsProvider(config *types.ProviderConfig) (Provider, error) {
	base := NewBaseProvider(config)
	return &GNewsProvider{BaseProvider: base}, nil
}

// gnewsResponse represents a GNews /v4/search response.
type gnewsResponse struct {
	TotalArticles int `json:"totalArticles"`
	Articles      []struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Search executes a search query against GNews.
func (p *GNewsProvider) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	startTime := time.Now()

	lang := req.Language
	if lang == "" {
		lang = "en"
	}

	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("from", searchWindowStart(req.LookbackDays)+"T00:00:00Z")
	params.Set("sortby", "publish-date")
	params.Set("apikey", p.GetAPIKey())
	params.Set("max", strconv.Itoa(req.MaxResults))
	params.Set("lang", lang)

	apiURL := fmt.Sprintf("%s/v4/search?%s", p.config.APIHost, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.DoRequest(ctx, httpReq)
	if err != nil {
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     "REQUEST_FAILED",
			Message:  "Failed to execute request",
			Err:      err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return nil, &types.ProviderError{
			Provider: p.GetID(),
			Code:     fmt.Sprintf("HTTP_%d", resp.StatusCode),
			Message:  string(body),
		}
	}

	var apiResp gnewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	results := make([]types.Article, 0, len(apiResp.Articles))
	for _, a := range apiResp.Articles {
		if a.URL == "" {
			continue
		}
		results = append(results, types.Article{
			Title:       a.Title,
			URL:         a.URL,
			Description: a.Description,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}

	return &types.SearchResponse{
		Query:    req.Query,
		Results:  results,
		Took:     time.Since(startTime).Milliseconds(),
		Provider: p.GetID(),
	}, nil
}
