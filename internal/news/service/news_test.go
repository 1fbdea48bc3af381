package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/rapidreads/rapidreads-backend/internal/news/biz"
	"github.com/rapidreads/rapidreads-backend/internal/news/llm"
	"github.com/rapidreads/rapidreads-backend/internal/news/types"
	apperrors "github.com/rapidreads/rapidreads-backend/internal/pkg/errors"
	"github.com/rapidreads/rapidreads-backend/internal/pkg/logger"
	"github.com/rapidreads/rapidreads-backend/internal/pkg/workerpool"
)

type stubFinder struct {
	results []types.Article
	err     error
}

func (f *stubFinder) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	n := len(f.results)
	if req.MaxResults < n {
		n = req.MaxResults
	}
	return &types.SearchResponse{Results: f.results[:n]}, nil
}

type stubExtractor struct{}

func (stubExtractor) Extract(ctx context.Context, url string) types.Extraction {
	return types.Extraction{
		URL:  url,
		Text: strings.Repeat("Readable article body with enough text to summarize. ", 5),
	}
}

type stubChatClient struct{}

func (stubChatClient) Complete(ctx context.Context, req llm.CompletionRequest) (string, error) {
	if strings.Contains(req.Prompt, "cohesive report") {
		return "# Weekly Digest\n\nThe synthesized **report** text.", nil
	}
	return "A short article summary.", nil
}

func newTestRouter(t *testing.T, finder biz.Finder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pool, err := workerpool.New(2, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pool.Shutdown)

	uc := biz.NewReportUseCase(biz.ReportUseCaseDeps{
		Finder:         finder,
		Extractor:      stubExtractor{},
		Client:         stubChatClient{},
		Pool:           pool,
		ArticleTimeout: 5 * time.Second,
		Logger:         zap.NewNop(),
	})

	svc := NewNewsService(uc, []types.ProviderID{types.ProviderNewsAPI, types.ProviderGNews}, 4, logger.L())

	router := gin.New()
	svc.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateReport_BadRequests(t *testing.T) {
	router := newTestRouter(t, &stubFinder{})

	tests := []struct {
		name string
		body string
	}{
		{"missing query", `{"count": 4}`},
		{"count below minimum", `{"query": "ai", "count": 1}`},
		{"count above maximum", `{"query": "ai", "count": 11}`},
		{"negative lookback", `{"query": "ai", "lookback_days": -1}`},
		{"malformed json", `{"query":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, router, http.MethodPost, "/api/v1/reports", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGenerateReport_OK(t *testing.T) {
	articles := []types.Article{
		{Title: "Solar record", URL: "https://example.com/1", Description: "d1", PublishedAt: "2026-08-26T10:00:00Z", Source: "Example Times"},
		{Title: "Wind expands", URL: "https://example.com/2", Description: "d2", PublishedAt: "2026-08-25T10:00:00Z", Source: "Energy Weekly"},
	}
	router := newTestRouter(t, &stubFinder{results: articles})

	w := doRequest(t, router, http.MethodPost, "/api/v1/reports",
		`{"query": "renewable energy", "count": 2, "lookback_days": 7}`)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Code    int                    `json:"code"`
		Message string                 `json:"message"`
		Data    GenerateReportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	assert.Equal(t, apperrors.Success, envelope.Code)
	assert.Equal(t, "renewable energy", envelope.Data.Query)
	assert.NotEmpty(t, envelope.Data.ID)
	assert.Contains(t, envelope.Data.Report, "report")
	// Markdown is rendered for the UI.
	assert.Contains(t, envelope.Data.ReportHTML, "<h1>")
	assert.Contains(t, envelope.Data.ReportHTML, "<strong>report</strong>")

	require.Len(t, envelope.Data.Articles, 2)
	assert.Equal(t, "Solar record", envelope.Data.Articles[0].Title)
	assert.Equal(t, "A short article summary.", envelope.Data.Articles[0].Summary)
	assert.Equal(t, "https://example.com/2", envelope.Data.Articles[1].URL)
}

func TestGenerateReport_DefaultCount(t *testing.T) {
	articles := []types.Article{
		{Title: "A1", URL: "https://example.com/1", PublishedAt: "2026-08-26T10:00:00Z"},
		{Title: "A2", URL: "https://example.com/2", PublishedAt: "2026-08-26T10:00:00Z"},
		{Title: "A3", URL: "https://example.com/3", PublishedAt: "2026-08-26T10:00:00Z"},
		{Title: "A4", URL: "https://example.com/4", PublishedAt: "2026-08-26T10:00:00Z"},
		{Title: "A5", URL: "https://example.com/5", PublishedAt: "2026-08-26T10:00:00Z"},
	}
	router := newTestRouter(t, &stubFinder{results: articles})

	// Count omitted: the server default of 4 applies.
	w := doRequest(t, router, http.MethodPost, "/api/v1/reports", `{"query": "ai"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Data GenerateReportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data.Articles, 4)
}

func TestGenerateReport_NoArticles(t *testing.T) {
	router := newTestRouter(t, &stubFinder{})

	w := doRequest(t, router, http.MethodPost, "/api/v1/reports", `{"query": "nothing matches"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Code int                    `json:"code"`
		Data GenerateReportResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, apperrors.Success, envelope.Code)
	assert.Equal(t, types.NoArticlesReport, envelope.Data.Report)
	assert.Empty(t, envelope.Data.Articles)
}

func TestGenerateReport_SearchFailure(t *testing.T) {
	router := newTestRouter(t, &stubFinder{err: upstreamErr()})

	w := doRequest(t, router, http.MethodPost, "/api/v1/reports", `{"query": "ai"}`)
	require.NotEqual(t, http.StatusOK, w.Code)

	var envelope struct {
		Code int `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, apperrors.ErrSearchFailed, envelope.Code)
}

func TestListProviders(t *testing.T) {
	router := newTestRouter(t, &stubFinder{})

	w := doRequest(t, router, http.MethodGet, "/api/v1/providers", "")
	require.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Code int `json:"code"`
		Data struct {
			Providers []string `json:"providers"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, apperrors.Success, envelope.Code)
	assert.ElementsMatch(t, []string{"newsapi", "gnews"}, envelope.Data.Providers)
}

func upstreamErr() error {
	return &types.ProviderError{Provider: "newsapi", Code: "HTTP_500", Message: "upstream down"}
}
