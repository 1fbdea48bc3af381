package service

import "github.com/rapidreads/rapidreads-backend/internal/news/types"

// GenerateReportRequest is the body of POST /api/v1/reports. Count outside
// [2,10] never reaches the pipeline; zero values take server defaults.
type GenerateReportRequest struct {
	Query        string `json:"query" binding:"required"`
	Count        int    `json:"count" binding:"omitempty,min=2,max=10"`
	LookbackDays int    `json:"lookback_days" binding:"omitempty,min=0"`
}

// ArticleCard is one per-article entry in the response.
type ArticleCard struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"`
	Source      string `json:"source,omitempty"`
	Summary     string `json:"summary"`
}

// GenerateReportResponse carries the synthesized report plus one card per
// article, in the finder's order.
type GenerateReportResponse struct {
	ID         string        `json:"id"`
	Query      string        `json:"query"`
	Report     string        `json:"report"`
	ReportHTML string        `json:"report_html"`
	Articles   []ArticleCard `json:"articles"`
	Took       int64         `json:"took"`
}

func toReportResponse(report *types.Report, html string) *GenerateReportResponse {
	cards := make([]ArticleCard, len(report.Articles))
	for i, art := range report.Articles {
		cards[i] = ArticleCard{
			Title:       art.Title,
			URL:         art.URL,
			Description: art.Description,
			PublishedAt: art.PublishedAt,
			Source:      art.Source,
			Summary:     report.Summaries[i],
		}
	}

	return &GenerateReportResponse{
		ID:         report.ID,
		Query:      report.Query,
		Report:     report.Text,
		ReportHTML: html,
		Articles:   cards,
		Took:       report.TookMillis,
	}
}
