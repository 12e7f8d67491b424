package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"silver-advisor/internal/api"
	"silver-advisor/internal/interfaces"
	"silver-advisor/internal/logger"
	"silver-advisor/internal/store"
	"silver-advisor/internal/types"
)

// ErrUnknownTheme is returned for a theme with no place in the advisor
var ErrUnknownTheme = errors.New("unknown theme")

// Service provides headlines per theme from the configured feeds, with caching
type Service struct {
	scraper *Scraper
	client  *api.Client
	cache   *gocache.Cache
	limiter *hostLimiter
	feeds   map[string][]store.FeedConfig
	cfg     *ServiceConfig
}

var _ interfaces.HeadlineProvider = (*Service)(nil)

// ServiceConfig configures the headline service
type ServiceConfig struct {
	Feeds             []store.FeedConfig
	MaxItems          int           // per feed, when the feed sets no limit
	CacheTTL          time.Duration // 0 disables caching
	Timeout           time.Duration
	RequestsPerSecond float64 // per host; <= 0 means unlimited
	Burst             int
	RSS2JSONEndpoint  string
	Retry             *api.RetryConfig
	HTTPClient        *http.Client // rss2json transport; its own Timeout overrides Timeout
}

// DefaultServiceConfig returns defaults for the given feeds
func DefaultServiceConfig(feeds []store.FeedConfig) *ServiceConfig {
	return &ServiceConfig{
		Feeds:             feeds,
		MaxItems:          20,
		CacheTTL:          15 * time.Minute,
		Timeout:           20 * time.Second,
		RequestsPerSecond: 1,
		Burst:             2,
		RSS2JSONEndpoint:  "https://api.rss2json.com/v1/api.json",
	}
}

// ServiceConfigFromStore maps the news section of the bot config
func ServiceConfigFromStore(cfg *store.Config) *ServiceConfig {
	return &ServiceConfig{
		Feeds:             cfg.News.Feeds,
		MaxItems:          cfg.News.MaxItems,
		CacheTTL:          time.Duration(cfg.News.CacheTTLMinutes) * time.Minute,
		Timeout:           time.Duration(cfg.News.TimeoutSeconds) * time.Second,
		RequestsPerSecond: cfg.News.RequestsPerSecond,
		Burst:             cfg.News.Burst,
		RSS2JSONEndpoint:  cfg.News.RSS2JSONEndpoint,
	}
}

func NewService(cfg *ServiceConfig) *Service {
	byTheme := make(map[string][]store.FeedConfig)
	for _, f := range cfg.Feeds {
		byTheme[f.Theme] = append(byTheme[f.Theme], f)
	}

	opts := []api.ClientOption{api.WithTimeout(cfg.Timeout)}
	if cfg.Retry != nil {
		opts = append(opts, api.WithRetry(cfg.Retry))
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, api.WithHTTPClient(cfg.HTTPClient))
	}

	return &Service{
		scraper: NewScraper(cfg.Timeout),
		client:  api.NewClient(opts...),
		cache:   gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL+time.Minute),
		limiter: newHostLimiter(cfg.RequestsPerSecond, cfg.Burst),
		feeds:   byTheme,
		cfg:     cfg,
	}
}

// Headlines returns the theme's headlines, feeds concatenated in config order
// and each feed in its own order. A failing feed fails the call unless the feed
// is optional.
func (s *Service) Headlines(ctx context.Context, theme string) ([]types.Headline, error) {
	switch theme {
	case types.ThemeSilver, types.ThemeUSD, types.ThemeRegulatory:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, theme)
	}

	all := []types.Headline{}
	for _, feed := range s.feeds[theme] {
		items, err := s.feedHeadlines(ctx, feed)
		if err != nil {
			if feed.Optional {
				logger.Warn(ctx, "Optional feed failed, continuing without it", "feed", feed.Name, "error", err)
				continue
			}
			return nil, fmt.Errorf("feed %s: %w", feed.Name, err)
		}
		all = append(all, items...)
	}

	logger.Info(ctx, "Headlines collected", "theme", theme, "feeds", len(s.feeds[theme]), "headlines", len(all))
	return all, nil
}

func (s *Service) feedHeadlines(ctx context.Context, feed store.FeedConfig) ([]types.Headline, error) {
	key := cacheKey(feed)
	if s.cfg.CacheTTL > 0 {
		if cached, ok := s.cache.Get(key); ok {
			logger.Debug(ctx, "Using cached headlines", "feed", feed.Name)
			return copyHeadlines(cached.([]types.Headline)), nil
		}
	}

	if err := s.limiter.Wait(ctx, s.requestURL(feed)); err != nil {
		return nil, err
	}

	op := logger.StartOperation(ctx, "news.feed", "feed", feed.Name, "kind", feed.Kind)
	ctx = op.GetContext()

	var (
		items []types.Headline
		err   error
	)
	switch feed.Kind {
	case store.FeedKindRSS:
		items, err = s.scraper.ScrapeRSS(ctx, feed)
	case store.FeedKindHTML:
		items, err = s.scraper.ScrapeHTML(ctx, feed)
	case store.FeedKindRSS2JSON:
		items, err = fetchRSS2JSON(ctx, s.client, s.cfg.RSS2JSONEndpoint, feed)
	default:
		err = fmt.Errorf("unsupported feed kind %q", feed.Kind)
	}
	if err != nil {
		op.EndWithError(err)
		return nil, err
	}

	limit := feed.Limit
	if limit <= 0 {
		limit = s.cfg.MaxItems
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}

	if s.cfg.CacheTTL > 0 {
		s.cache.Set(key, copyHeadlines(items), gocache.DefaultExpiration)
	}
	op.End("items", len(items))
	return items, nil
}

// requestURL is the URL actually fetched for a feed; rss2json feeds go
// through the gateway
func (s *Service) requestURL(feed store.FeedConfig) string {
	if feed.Kind == store.FeedKindRSS2JSON {
		return rss2jsonURL(s.cfg.RSS2JSONEndpoint, feed)
	}
	return feed.URL
}

// ClearCache drops all cached feed results
func (s *Service) ClearCache() {
	s.cache.Flush()
}

// CachedFeeds returns the number of feeds with a live cache entry
func (s *Service) CachedFeeds() int {
	return s.cache.ItemCount()
}

func cacheKey(feed store.FeedConfig) string {
	return feed.Kind + "|" + feed.URL
}

func copyHeadlines(in []types.Headline) []types.Headline {
	return append([]types.Headline(nil), in...)
}
