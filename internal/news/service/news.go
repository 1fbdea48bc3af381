package service

import (
	"bytes"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"go.uber.org/zap"

	"github.com/rapidreads/rapidreads-backend/internal/news/biz"
	"github.com/rapidreads/rapidreads-backend/internal/news/types"
	"github.com/rapidreads/rapidreads-backend/internal/pkg/logger"
	"github.com/rapidreads/rapidreads-backend/internal/pkg/response"
)

// NewsService exposes the report pipeline over HTTP.
type NewsService struct {
	uc           *biz.ReportUseCase
	providers    []types.ProviderID
	defaultCount int
	markdown     goldmark.Markdown
	logger       *logger.Logger
}

// NewNewsService creates the news HTTP service.
func NewNewsService(uc *biz.ReportUseCase, providers []types.ProviderID, defaultCount int, logger *logger.Logger) *NewsService {
	if defaultCount < biz.MinCount || defaultCount > biz.MaxCount {
		defaultCount = 4
	}
	return &NewsService{
		uc:           uc,
		providers:    providers,
		defaultCount: defaultCount,
		markdown:     goldmark.New(),
		logger:       logger,
	}
}

// RegisterRoutes mounts the service under the given group.
func (s *NewsService) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/reports", s.GenerateReport)
	r.GET("/providers", s.ListProviders)
}

// GenerateReport runs the full pipeline for one topic.
func (s *NewsService) GenerateReport(c *gin.Context) {
	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if req.Count == 0 {
		req.Count = s.defaultCount
	}

	report, err := s.uc.GenerateReport(c.Request.Context(), req.Query, req.Count, req.LookbackDays)
	if err != nil {
		s.logger.Error("report generation failed",
			zap.String("query", req.Query),
			zap.Error(err))
		response.HandleError(c, err)
		return
	}

	response.Success(c, toReportResponse(report, s.renderMarkdown(report.Text)))
}

// ListProviders returns the registered news-search backends.
func (s *NewsService) ListProviders(c *gin.Context) {
	response.Success(c, gin.H{"providers": s.providers})
}

// renderMarkdown converts the report's markdown to HTML for the web UI.
// A render failure falls back to the raw text; the report itself is always
// present in the response.
func (s *NewsService) renderMarkdown(text string) string {
	var buf bytes.Buffer
	if err := s.markdown.Convert([]byte(text), &buf); err != nil {
		s.logger.Warn("markdown render failed", zap.Error(err))
		return text
	}
	return buf.String()
}
