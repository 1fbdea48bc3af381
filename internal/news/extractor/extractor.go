package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/rapidreads/rapidreads-backend/internal/news/types"
)

// maxBodyBytes bounds how much of a page is read before extraction.
const maxBodyBytes = 5 << 20

// Extractor downloads article pages and reduces them to plain text.
type Extractor struct {
	httpClient *http.Client
	logger     *zap.Logger
}

// New creates an extractor with a timeout-bounded HTTP client.
func New(timeout time.Duration, logger *zap.Logger) *Extractor {
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &Extractor{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Extract fetches the page at url and returns its readable text. Failures
// are reported on the Err field of the result, never encoded into Text.
func (e *Extractor) Extract(ctx context.Context, url string) types.Extraction {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.Extraction{URL: url, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("User-Agent", "RapidReads/1.0 (+article summaries)")
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return types.Extraction{URL: url, Err: fmt.Errorf("fetch page: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Extraction{URL: url, Err: fmt.Errorf("fetch page: status %d", resp.StatusCode)}
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return types.Extraction{URL: url, Err: fmt.Errorf("read page: %w", err)}
	}

	text := ExtractArticleText(string(raw))
	if text == "" {
		return types.Extraction{URL: url, Err: fmt.Errorf("no readable text found")}
	}

	e.logger.Debug("article extracted",
		zap.String("url", url),
		zap.Int("chars", len(text)))

	return types.Extraction{URL: url, Text: text}
}
