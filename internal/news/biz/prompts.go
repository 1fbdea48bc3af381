package biz

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rapidreads/rapidreads-backend/internal/news/types"
)

// Single home for every prompt the pipeline sends. The summary and report
// flows share one template set so wording can only diverge here.
const (
	summaryPromptPrefix = "Summarize the key points of this article in 3-5 concise sentences:\n\n"

	reportPromptPrefix = "Create a cohesive report (200-300 words) summarizing the key insights and patterns from these article summaries:\n\n"

	summarizeMaxTokens   = 150
	summarizeTemperature = 0.5

	reportMaxTokens   = 400
	reportTemperature = 0.7
)

// buildSummaryPrompt embeds at most MaxSummarizeInput characters of article
// text in the summarization prompt.
func buildSummaryPrompt(text string) string {
	return summaryPromptPrefix + truncateRunes(text, types.MaxSummarizeInput)
}

// truncateRunes cuts s to at most n characters. The budget counts runes, not
// bytes, so a multi-byte rune is never split.
func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

// buildDigest assembles the numbered title/summary/link block fed to the
// report prompt. Inputs must be parallel slices.
func buildDigest(articles []types.Article, summaries []string) string {
	var sb strings.Builder
	for i, art := range articles {
		fmt.Fprintf(&sb, "### %d. %s\n", i+1, art.Title)
		fmt.Fprintf(&sb, "- **Summary:** %s\n", summaries[i])
		fmt.Fprintf(&sb, "- [Read full article](%s)\n\n", art.URL)
	}
	return sb.String()
}

func buildReportPrompt(articles []types.Article, summaries []string) string {
	return reportPromptPrefix + buildDigest(articles, summaries)
}
