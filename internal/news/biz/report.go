package biz

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rapidreads/rapidreads-backend/internal/news/llm"
	"github.com/rapidreads/rapidreads-backend/internal/news/types"
	apperrors "github.com/rapidreads/rapidreads-backend/internal/pkg/errors"
	"github.com/rapidreads/rapidreads-backend/internal/pkg/workerpool"
)

const (
	// MinCount and MaxCount bound how many articles one report may cover.
	MinCount = 2
	MaxCount = 10
)

// Finder locates recent articles for a topic.
type Finder interface {
	Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error)
}

// Extractor pulls readable text out of an article page.
type Extractor interface {
	Extract(ctx context.Context, url string) types.Extraction
}

// ReportUseCase runs the find -> extract -> summarize -> synthesize pipeline.
// It is a pure function of its request; all state lives in its collaborators.
type ReportUseCase struct {
	finder         Finder
	extractor      Extractor
	summarizer     *Summarizer
	client         llm.ChatClient
	pool           *workerpool.Pool
	articleTimeout time.Duration
	logger         *zap.Logger
}

// ReportUseCaseDeps wires the pipeline's collaborators.
type ReportUseCaseDeps struct {
	Finder         Finder
	Extractor      Extractor
	Client         llm.ChatClient
	Pool           *workerpool.Pool
	ArticleTimeout time.Duration
	Logger         *zap.Logger
}

// NewReportUseCase creates the pipeline use case.
func NewReportUseCase(deps ReportUseCaseDeps) *ReportUseCase {
	timeout := deps.ArticleTimeout
	if timeout == 0 {
		timeout = 90 * time.Second
	}
	return &ReportUseCase{
		finder:         deps.Finder,
		extractor:      deps.Extractor,
		summarizer:     NewSummarizer(deps.Client),
		client:         deps.Client,
		pool:           deps.Pool,
		articleTimeout: timeout,
		logger:         deps.Logger,
	}
}

// GenerateReport produces the cross-article report for a topic.
//
// Articles are extracted and summarized concurrently on the worker pool;
// results are collected in the finder's order and one bad article never
// aborts the batch - its slot carries the fixed fallback summary. Only a
// failed synthesis call fails the whole request.
func (uc *ReportUseCase) GenerateReport(ctx context.Context, query string, count, lookbackDays int) (*types.Report, error) {
	startTime := time.Now()

	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apperrors.Wrap(types.ErrEmptyQuery, apperrors.ErrInvalidParams)
	}
	if count < MinCount || count > MaxCount {
		return nil, apperrors.Wrap(types.ErrInvalidCount, apperrors.ErrInvalidParams)
	}
	if lookbackDays < 0 {
		lookbackDays = 0
	}

	searchResp, err := uc.finder.Search(ctx, &types.SearchRequest{
		Query:        query,
		MaxResults:   count,
		LookbackDays: lookbackDays,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrSearchFailed)
	}

	articles := searchResp.Results
	if len(articles) == 0 {
		return &types.Report{
			ID:         uuid.New().String(),
			Query:      query,
			Text:       types.NoArticlesReport,
			Articles:   []types.Article{},
			Summaries:  []string{},
			TookMillis: time.Since(startTime).Milliseconds(),
		}, nil
	}

	summaries := uc.summarizeAll(ctx, articles)

	reportText, err := uc.synthesize(ctx, articles, summaries)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("report generated",
		zap.String("query", query),
		zap.Int("articles", len(articles)),
		zap.Duration("took", time.Since(startTime)))

	return &types.Report{
		ID:         uuid.New().String(),
		Query:      query,
		Text:       reportText,
		Articles:   articles,
		Summaries:  summaries,
		TookMillis: time.Since(startTime).Milliseconds(),
	}, nil
}

// summarizeAll fans extract+summarize tasks out on the pool and collects
// the results in the original article order.
func (uc *ReportUseCase) summarizeAll(ctx context.Context, articles []types.Article) []string {
	resultChs := make([]<-chan workerpool.TaskResult, len(articles))

	for i, article := range articles {
		url := article.URL
		resultChs[i] = uc.pool.SubmitWithResult(func() (interface{}, error) {
			taskCtx, cancel := context.WithTimeout(ctx, uc.articleTimeout)
			defer cancel()

			ext := uc.extractor.Extract(taskCtx, url)
			if ext.Err != nil {
				uc.logger.Warn("article extraction failed",
					zap.String("url", url),
					zap.Error(ext.Err))
			}
			return uc.summarizer.Summarize(taskCtx, ext)
		})
	}

	summaries := make([]string, len(articles))
	for i, ch := range resultChs {
		result := <-ch
		if result.Error != nil {
			uc.logger.Warn("article summarization failed",
				zap.String("url", articles[i].URL),
				zap.Error(result.Error))
			summaries[i] = types.InsufficientContent
			continue
		}
		summaries[i] = result.Data.(string)
	}

	return summaries
}

// synthesize runs the single cross-article completion over the digest.
func (uc *ReportUseCase) synthesize(ctx context.Context, articles []types.Article, summaries []string) (string, error) {
	report, err := uc.client.Complete(ctx, llm.CompletionRequest{
		Prompt:      buildReportPrompt(articles, summaries),
		MaxTokens:   reportMaxTokens,
		Temperature: reportTemperature,
	})
	if err != nil {
		return "", apperrors.Wrap(err, apperrors.ErrReportFailed)
	}
	return strings.TrimSpace(report), nil
}
