package ingestion

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-analyzer/internal/fetch"
	"github.com/sirupsen/logrus"
)

// ErrNoText is returned when a document yields no text after cleaning.
var ErrNoText = errors.New("document contains no text")

// Document is cleaned text with its provenance.
type Document struct {
	Text     string    `json:"text"`
	Metadata *Metadata `json:"metadata"`
}

// IngestBytes extracts and cleans an in-memory document. name and mimeType
// select the format.
func IngestBytes(name, mimeType string, data []byte) (*Document, error) {
	format, err := DetectFormat(name, mimeType)
	if err != nil {
		return nil, err
	}
	raw, err := ExtractText(format, data)
	if err != nil {
		return nil, err
	}

	text := CleanText(raw)
	if text == "" {
		return nil, fmt.Errorf("%s: %w", name, ErrNoText)
	}
	meta := NewMetadata(text, name)
	meta.Format = format
	return &Document{Text: text, Metadata: meta}, nil
}

// IngestFile reads a resume document from disk.
func IngestFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("file not found: %w", err)
		}
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	doc, err := IngestBytes(filepath.Base(path), "", data)
	if err != nil {
		return nil, err
	}
	doc.Metadata.Source = path
	return doc, nil
}

// IngestURL fetches a job posting and cleans its text.
func IngestURL(ctx context.Context, fetcher *fetch.CachedFetcher, urlStr string, log *logrus.Logger) (*Document, error) {
	page, err := fetcher.Fetch(ctx, urlStr)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch job posting: %w", err)
	}
	if log != nil {
		log.WithFields(logrus.Fields{
			"url":        urlStr,
			"platform":   page.Platform,
			"from_cache": page.FromCache,
			"chars":      len(page.Text),
		}).Debug("fetched job posting")
	}

	text := CleanText(page.Text)
	meta := NewMetadata(text, urlStr)
	meta.Platform = string(page.Platform)
	meta.Title = page.Title
	return &Document{Text: text, Metadata: meta}, nil
}
