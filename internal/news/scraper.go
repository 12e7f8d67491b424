package news

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly/v2"

	"silver-advisor/internal/logger"
	"silver-advisor/internal/store"
	"silver-advisor/internal/types"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Scraper collects headlines from RSS documents and HTML listing pages
type Scraper struct {
	timeout time.Duration
}

func NewScraper(timeout time.Duration) *Scraper {
	return &Scraper{timeout: timeout}
}

func (s *Scraper) newCollector(ctx context.Context, feed store.FeedConfig) *colly.Collector {
	c := colly.NewCollector(
		colly.MaxDepth(1),
		colly.Async(false),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(s.timeout)

	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("User-Agent", userAgent)
	})
	c.OnError(func(r *colly.Response, err error) {
		logger.ErrorWithErr(ctx, "Scraping error", err, "feed", feed.Name, "url", r.Request.URL.String(), "status", r.StatusCode)
	})
	return c
}

// ScrapeRSS reads the <item> elements of an RSS document in document order.
// Items are kept even without a title so the scorer can reject them.
func (s *Scraper) ScrapeRSS(ctx context.Context, feed store.FeedConfig) ([]types.Headline, error) {
	headlines := []types.Headline{}

	c := s.newCollector(ctx, feed)
	c.OnXML("//item", func(e *colly.XMLElement) {
		headlines = append(headlines, types.Headline{
			Title:     e.ChildText("title"),
			Link:      e.ChildText("link"),
			Published: e.ChildText("pubDate"),
			Source:    feed.Name,
		})
	})

	if err := c.Visit(feed.URL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", feed.URL, err)
	}
	c.Wait()

	logger.Debug(ctx, "RSS feed scraped", "feed", feed.Name, "items", len(headlines))
	return headlines, nil
}

// ScrapeHTML extracts headlines from a listing page using the feed selectors.
// Containers without title text are page furniture and are skipped.
func (s *Scraper) ScrapeHTML(ctx context.Context, feed store.FeedConfig) ([]types.Headline, error) {
	headlines := []types.Headline{}
	sel := feed.Selectors

	c := s.newCollector(ctx, feed)
	c.OnHTML(sel.Container, func(e *colly.HTMLElement) {
		titleSel := e.DOM.Find(sel.Title).First()
		title := selectionText(titleSel)
		if title == "" {
			return
		}

		linkSel := titleSel
		if sel.Link != "" {
			linkSel = e.DOM.Find(sel.Link).First()
		}
		link := firstHref(linkSel)
		if link != "" {
			link = e.Request.AbsoluteURL(link)
		}

		published := ""
		if sel.Published != "" {
			published = selectionText(e.DOM.Find(sel.Published).First())
		}

		headlines = append(headlines, types.Headline{
			Title:     title,
			Link:      link,
			Published: published,
			Source:    feed.Name,
		})
	})

	if err := c.Visit(feed.URL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", feed.URL, err)
	}
	c.Wait()

	logger.Debug(ctx, "HTML listing scraped", "feed", feed.Name, "items", len(headlines))
	return headlines, nil
}

// selectionText collapses the whitespace of a selection's text
func selectionText(s *goquery.Selection) string {
	return strings.Join(strings.Fields(s.Text()), " ")
}

// firstHref returns the href of the selection, or of its first or closest link
func firstHref(s *goquery.Selection) string {
	if href, ok := s.Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	if href, ok := s.Find("a[href]").First().Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	if href, ok := s.Closest("a[href]").Attr("href"); ok {
		return strings.TrimSpace(href)
	}
	return ""
}
