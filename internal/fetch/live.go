package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"

	"github.com/saf-hub/sentinel/internal/catalog"
	"github.com/saf-hub/sentinel/internal/signal"
)

const (
	feedItemLimit    = 20
	projectScanLimit = 20
	gcfScanLimit     = 10
	userAgent        = "saf-hub-sentinel/1.0 (Biojet Intelligence Platform)"
)

// Live queries the category's external sources, applies the relevance
// filter and reports whatever survived. Source failures are logged and
// converted into "zero candidates": ErrSourceUnavailable never escapes
// Fetch.
type Live struct {
	Def    catalog.Definition
	Client *http.Client
	Logger *log.Logger
}

// NewLive builds a live strategy with a bounded-timeout HTTP client.
func NewLive(def catalog.Definition, timeout time.Duration) *Live {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Live{
		Def:    def,
		Client: &http.Client{Timeout: timeout},
		Logger: log.New(log.Writer(), "[LIVE] ", log.LstdFlags),
	}
}

func (l *Live) Mode() signal.Mode { return signal.ModeLive }

// Fetch queries every configured source in order. Per-source failures
// degrade to warnings; the combined candidate list may legitimately be
// empty.
func (l *Live) Fetch(ctx context.Context, limit int) ([]signal.Candidate, error) {
	var all []signal.Candidate
	for _, src := range l.Def.Live {
		cands, err := l.fetchSource(ctx, src)
		if err != nil {
			l.Logger.Printf("warning: %s source %s: %v", l.Def.Category, src.Name, err)
			continue
		}
		all = append(all, cands...)
	}
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (l *Live) fetchSource(ctx context.Context, src catalog.LiveSource) ([]signal.Candidate, error) {
	switch src.Kind {
	case catalog.SourceRSS:
		return l.fetchFeed(ctx, src)
	case catalog.SourcePage:
		return l.fetchPage(ctx, src)
	case catalog.SourceWorldBank:
		return l.fetchWorldBank(ctx, src)
	case catalog.SourceGCF:
		return l.fetchGCF(ctx, src)
	default:
		return nil, fmt.Errorf("%w: unsupported source kind %q", ErrSourceUnavailable, src.Kind)
	}
}

// fetchFeed pulls an RSS/Atom feed and keeps items matching the category
// keywords.
func (l *Live) fetchFeed(ctx context.Context, src catalog.LiveSource) ([]signal.Candidate, error) {
	parser := gofeed.NewParser()
	parser.Client = l.Client
	parser.UserAgent = userAgent

	feed, err := parser.ParseURLWithContext(src.URL, ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	items := feed.Items
	if len(items) > feedItemLimit {
		items = items[:feedItemLimit]
	}

	var cands []signal.Candidate
	for _, item := range items {
		content := item.Title + " " + item.Description
		matched := Matched(content, l.Def.Keywords)
		if len(matched) == 0 {
			continue
		}
		cand := signal.Candidate{
			Source: src.Name,
			Title:  strings.TrimSpace(item.Title),
			Payload: map[string]any{
				"url":              strings.TrimSpace(item.Link),
				"keywords_matched": matched,
				"pub_date":         item.Published,
			},
		}
		if item.PublishedParsed != nil {
			cand.DiscoveredAt = *item.PublishedParsed
		}
		cands = append(cands, cand)
	}
	return cands, nil
}

// fetchPage reduces an HTML page to readable text; a keyword hit yields one
// candidate for the page.
func (l *Live) fetchPage(ctx context.Context, src catalog.LiveSource) ([]signal.Candidate, error) {
	resp, err := l.get(ctx, src.URL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	pageURL, err := url.Parse(src.URL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	article, err := readability.FromReader(resp.Body, pageURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	content := article.Title + " " + article.TextContent
	matched := Matched(content, l.Def.Keywords)
	if len(matched) == 0 {
		return nil, nil
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = src.Name
	}
	return []signal.Candidate{{
		Source: src.Name,
		Title:  title,
		Payload: map[string]any{
			"url":              src.URL,
			"keywords_matched": matched,
			"excerpt":          excerpt(article.TextContent, 280),
		},
	}}, nil
}

// fetchWorldBank queries the World Bank projects API for Nigerian energy
// projects. The API answers with a two-element array: metadata first, then
// the project list.
func (l *Live) fetchWorldBank(ctx context.Context, src catalog.LiveSource) ([]signal.Candidate, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("countrycode", "NG")
	q.Set("sector", "Energy")
	q.Set("per_page", "50")

	resp, err := l.get(ctx, src.URL+"?"+q.Encode())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var envelope []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding projects: %v", ErrSourceUnavailable, err)
	}
	if len(envelope) < 2 {
		return nil, nil
	}
	var projects []map[string]any
	if err := json.Unmarshal(envelope[1], &projects); err != nil {
		return nil, fmt.Errorf("%w: decoding project list: %v", ErrSourceUnavailable, err)
	}
	if len(projects) > projectScanLimit {
		projects = projects[:projectScanLimit]
	}

	var cands []signal.Candidate
	for _, project := range projects {
		name, _ := project["project_name"].(string)
		var sector string
		if s1, ok := project["sector1"].(map[string]any); ok {
			sector, _ = s1["Name"].(string)
		}
		matched := Matched(name+" "+sector, l.Def.Keywords)
		if len(matched) == 0 {
			continue
		}
		focus := "Energy"
		if sector != "" {
			focus = sector
		}
		id, _ := project["id"].(string)
		cands = append(cands, signal.Candidate{
			Source: src.Name,
			Title:  name,
			Payload: map[string]any{
				"amount_usd":       project["totalcommamt"],
				"funding_type":     "Loan/Grant",
				"url":              "https://projects.worldbank.org/en/projects-operations/project-detail/" + id,
				"deadline":         "Ongoing",
				"eligibility":      []string{"Nigeria"},
				"focus_areas":      []string{focus},
				"keywords_matched": matched,
			},
			Relevance: signal.Score(75),
		})
	}
	return cands, nil
}

// fetchGCF queries the Green Climate Fund project listing.
func (l *Live) fetchGCF(ctx context.Context, src catalog.LiveSource) ([]signal.Candidate, error) {
	resp, err := l.get(ctx, src.URL+"?country=Nigeria")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var decoded any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("%w: decoding projects: %v", ErrSourceUnavailable, err)
	}

	var projects []any
	switch v := decoded.(type) {
	case []any:
		projects = v
	case map[string]any:
		projects, _ = v["results"].([]any)
	}
	if len(projects) > gcfScanLimit {
		projects = projects[:gcfScanLimit]
	}

	var cands []signal.Candidate
	for _, raw := range projects {
		project, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		title, _ := project["title"].(string)
		if title == "" {
			title, _ = project["name"].(string)
		}
		matched := Matched(title, l.Def.Keywords)
		if len(matched) == 0 {
			continue
		}
		amount := project["funding_amount"]
		if amount == nil {
			amount = project["amount"]
		}
		fundingType, _ := project["type"].(string)
		if fundingType == "" {
			fundingType = "Grant"
		}
		link, _ := project["url"].(string)
		if link == "" {
			link = src.URL
		}
		cands = append(cands, signal.Candidate{
			Source: src.Name,
			Title:  title,
			Payload: map[string]any{
				"amount_usd":       amount,
				"funding_type":     fundingType,
				"url":              link,
				"keywords_matched": matched,
			},
			Relevance: signal.Score(80),
		})
	}
	return cands, nil
}

func (l *Live) get(ctx context.Context, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := l.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: unexpected status %s", ErrSourceUnavailable, resp.Status)
	}
	return resp, nil
}

// excerpt collapses whitespace and truncates to at most max bytes on a rune
// boundary, so the persisted payload stays valid UTF-8.
func excerpt(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}
