package extractor

import (
	"strings"

	"codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// minReadableLen guards against readability extracting only a title or
// metadata while the real body is elsewhere in the document.
const minReadableLen = 200

// ExtractArticleText converts raw article HTML into plain text paragraphs.
// Non-content elements (scripts, navigation, embeds) are stripped before
// readability runs; if readability fails or yields too little, the text is
// recovered paragraph by paragraph from the original markup.
func ExtractArticleText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	// Payload is already plain text.
	if !strings.Contains(trimmed, "<") {
		return normalizeWhitespace(trimmed)
	}

	if cleaned := removeBoilerplate(trimmed); cleaned != "" {
		trimmed = cleaned
	}

	article, err := readability.FromReader(strings.NewReader(trimmed), nil)
	if err == nil {
		var buf strings.Builder
		if err := article.RenderText(&buf); err == nil {
			text := strings.TrimSpace(buf.String())
			if len(text) >= minReadableLen {
				return normalizeWhitespace(text)
			}
		}
	}

	return extractParagraphs(trimmed)
}

// removeBoilerplate strips elements that never carry article text so that
// readability scores the remaining content more reliably.
func removeBoilerplate(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script, style, noscript, aside, nav, header, footer").Remove()
	doc.Find("iframe, embed, object, video, audio, canvas").Remove()
	doc.Find("[class*='social'], [class*='share'], [class*='comment'], [id*='comment']").Remove()

	cleaned, err := doc.Html()
	if err != nil {
		return ""
	}
	return cleaned
}

// extractParagraphs extracts text from HTML while preserving paragraph
// structure: headers, paragraphs and list items, separated by blank lines.
func extractParagraphs(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return StripTags(html)
	}

	var paragraphs []string
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, pre").Each(func(i int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			paragraphs = append(paragraphs, text)
		}
	})

	if len(paragraphs) == 0 {
		return StripTags(html)
	}

	return strings.Join(paragraphs, "\n\n")
}

// StripTags removes all HTML tags and returns normalized plain text.
func StripTags(raw string) string {
	p := bluemonday.StrictPolicy()
	return normalizeWhitespace(p.Sanitize(raw))
}

// normalizeWhitespace collapses runs of whitespace into single spaces.
func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
