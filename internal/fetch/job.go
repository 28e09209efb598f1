package fetch

import (
	"context"
	"fmt"
)

// JobPage is a fetched job posting reduced to text.
type JobPage struct {
	URL      string   `json:"url"`
	Platform Platform `json:"platform"`
	Title    string   `json:"title,omitempty"`
	Text     string   `json:"text"`
}

// JobPosting fetches urlStr and extracts the posting text with the
// selectors of the detected platform.
func JobPosting(ctx context.Context, urlStr string, opts *Options) (*JobPage, error) {
	platform := DetectPlatform(urlStr)

	result, err := URL(ctx, urlStr, opts)
	if err != nil {
		return nil, err
	}

	text, err := ExtractMainText(result.HTML, ContentSelectors(platform), NoiseSelectors(platform)...)
	if err != nil {
		return nil, &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}
	if text == "" {
		return nil, &Error{URL: urlStr, Message: "no text found on page"}
	}

	return &JobPage{
		URL:      urlStr,
		Platform: platform,
		Title:    Title(result.HTML),
		Text:     text,
	}, nil
}

// String summarizes the page for logs.
func (p *JobPage) String() string {
	return fmt.Sprintf("%s (%s, %d chars)", p.URL, p.Platform, len(p.Text))
}
