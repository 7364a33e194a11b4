// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package arxiv

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/Lyzr-Apps/elegant-fresh-forge/internal/httputil"
	"github.com/Lyzr-Apps/elegant-fresh-forge/pkg/types"
)

// atomAPIBase is the arXiv metadata endpoint. Declared as a var so tests
// can substitute an httptest server.
var atomAPIBase = "https://export.arxiv.org/api/query"

// Lookup fetches metadata for one identifier from the arXiv Atom API.
// It is independent of the summarization path: the agent supplies
// metadata for summaries, Lookup serves the direct lookup command.
func Lookup(ctx context.Context, id string, cfg types.LookupConfig) (types.PaperMetadata, error) {
	url := fmt.Sprintf("%s?id_list=%s&max_results=1", atomAPIBase, id)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return types.PaperMetadata{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", cfg.UserAgent)

	client := &http.Client{Timeout: cfg.Timeout}
	resp, err := httputil.DoWithRetry(ctx, client, req, cfg.MaxRetries)
	if err != nil {
		return types.PaperMetadata{}, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.PaperMetadata{}, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed atomFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return types.PaperMetadata{}, fmt.Errorf("parsing arXiv response: %w", err)
	}

	for _, entry := range feed.Entries {
		// The API answers unknown IDs with an entry whose ID lacks
		// the /abs/ path; skip those.
		if !strings.Contains(entry.ID, "/abs/") {
			continue
		}

		md := types.PaperMetadata{
			Title:    collapseWhitespace(entry.Title),
			Abstract: collapseWhitespace(entry.Summary),
			URL:      AbsURL(id),
		}
		for _, a := range entry.Authors {
			md.Authors = append(md.Authors, strings.TrimSpace(a.Name))
		}
		if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
			md.PublishedDate = t.Format("2006-01-02")
		}
		return md, nil
	}

	return types.PaperMetadata{}, fmt.Errorf("paper %s not found", id)
}

// collapseWhitespace trims the string and folds internal runs of
// whitespace (the Atom feed wraps titles and abstracts with newlines).
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// arXiv Atom feed XML structures.
type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID        string       `xml:"id"`
	Title     string       `xml:"title"`
	Summary   string       `xml:"summary"`
	Published string       `xml:"published"`
	Authors   []atomAuthor `xml:"author"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}
