package types

// Article is the metadata record produced by the finder. It is immutable
// after creation and lives only for the duration of one report request.
type Article struct {
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description"`
	PublishedAt string `json:"published_at"` // timestamp string as returned by the API
	Source      string `json:"source,omitempty"`
}

// Extraction is the outcome of pulling plain text from an article page.
// Failures stay on the Err field; they are never re-encoded as content.
type Extraction struct {
	URL  string
	Text string
	Err  error
}

// OK reports whether the extraction produced usable text.
func (e Extraction) OK() bool {
	return e.Err == nil && e.Text != ""
}

// InsufficientContent is the fixed summary emitted when an article has no
// usable text: failed extraction, or fewer than MinSummarizableLen characters.
const InsufficientContent = "Unable to summarize: Insufficient content."

// NoArticlesReport is returned when the finder comes back empty.
const NoArticlesReport = "No recent articles found for this topic."

const (
	// MinSummarizableLen is the minimum trimmed text length worth sending
	// to the model.
	MinSummarizableLen = 50

	// MaxSummarizeInput caps how much article text is embedded in the
	// summarization prompt.
	MaxSummarizeInput = 2000
)

// Report is the full result of one pipeline run. Summaries is always the
// same length and order as Articles.
type Report struct {
	ID         string    `json:"id"`
	Query      string    `json:"query"`
	Text       string    `json:"report"`
	HTML       string    `json:"report_html,omitempty"`
	Articles   []Article `json:"articles"`
	Summaries  []string  `json:"summaries"`
	TookMillis int64     `json:"took"`
}
