package news

import (
	"bytes"
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"f1insights/internal/httpx"
	"f1insights/internal/models"
)

const fetchTimeout = 15 * time.Second

// bodyStrategy is one attempt at locating an article's main content
// container. Strategies run in order; the first that yields readable
// text wins.
type bodyStrategy struct {
	name     string
	selector string
}

// Scraper lists article cards from the news site's front page and
// extracts article bodies. The page structure is not under our
// control, so every selector has a fallback and a structural miss
// degrades to coarser extraction instead of failing. Correctness
// against site redesigns is explicitly best-effort.
type Scraper struct {
	http *httpx.Client

	listingPath   string
	cardSelector  string
	titleSelector string
	strategies    []bodyStrategy
}

func NewScraper(client *httpx.Client) *Scraper {
	return &Scraper{
		http:          client,
		listingPath:   "/f1/news/",
		cardSelector:  "div.ms-item",
		titleSelector: ".ms-item__title",
		strategies: []bodyStrategy{
			{name: "primary", selector: "div.ms-article-content"},
			{name: "secondary", selector: "div.article-body"},
			{name: "generic", selector: "article"},
		},
	}
}

// LatestArticles scrapes the listing page for article cards. Zero
// cards is a valid answer (empty slice, nil error), not a failure; the
// caller should treat it as "nothing available" and not retry.
func (s *Scraper) LatestArticles(ctx context.Context) ([]models.Article, error) {
	body, err := s.http.Get(ctx, s.listingPath, nil, fetchTimeout)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, &httpx.Error{Kind: httpx.KindParse, URL: s.http.BaseURL() + s.listingPath, Err: err}
	}

	origin, err := url.Parse(s.http.BaseURL())
	if err != nil {
		return nil, err
	}

	articles := []models.Article{}
	doc.Find(s.cardSelector).Each(func(_ int, card *goquery.Selection) {
		link := card
		if !card.Is("a") {
			link = card.Find("a").First()
		}
		href, ok := link.Attr("href")
		if !ok || strings.TrimSpace(href) == "" {
			return
		}
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}

		title := strings.TrimSpace(card.Find(s.titleSelector).First().Text())
		if title == "" {
			title = strings.TrimSpace(link.Text())
		}
		if title == "" {
			return
		}

		articles = append(articles, models.Article{
			URL:   origin.ResolveReference(ref).String(),
			Title: title,
		})
	})

	slog.DebugContext(ctx, "scraped article listing", "count", len(articles))
	return articles, nil
}

// ArticleBody fetches an article page and extracts its readable text.
// Only a fetch-level failure is returned as an error; a structural
// miss degrades through the strategy chain down to whole-page text.
func (s *Scraper) ArticleBody(ctx context.Context, articleURL string) (string, error) {
	body, err := s.http.Get(ctx, articleURL, nil, fetchTimeout)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", &httpx.Error{Kind: httpx.KindParse, URL: articleURL, Err: err}
	}

	for _, strat := range s.strategies {
		container := doc.Find(strat.selector).First()
		if container.Length() == 0 {
			continue
		}
		text := paragraphText(container)
		if text == "" {
			continue
		}
		slog.DebugContext(ctx, "extracted article body", "url", articleURL, "strategy", strat.name)
		return text, nil
	}

	// Last resort: whole-page visible text. Still a success for the
	// caller, but worth noticing in the logs.
	slog.WarnContext(ctx, "no content container matched, degrading to page text", "url", articleURL)
	return strings.TrimSpace(doc.Find("body").Text()), nil
}

// paragraphText joins the trimmed text of every paragraph under the
// container in document order, skipping paragraphs that are empty
// after trimming.
func paragraphText(container *goquery.Selection) string {
	var parts []string
	container.Find("p").Each(func(_ int, p *goquery.Selection) {
		if t := strings.TrimSpace(p.Text()); t != "" {
			parts = append(parts, t)
		}
	})
	return strings.Join(parts, "\n")
}
