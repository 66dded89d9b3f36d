package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/ppiankov/persona/internal/logging"
	"github.com/ppiankov/persona/internal/model"
	"github.com/sirupsen/logrus"
)

const (
	// PermalinkHost prefixes every item locator
	PermalinkHost = "https://www.reddit.com"

	// DefaultLimit is the number of items requested per section
	DefaultLimit = 50
)

// ErrDisallowed is returned when robots.txt forbids a fetch
var ErrDisallowed = errors.New("disallowed by robots.txt")

// Source produces a ContentSet for an account
type Source interface {
	FetchUser(ctx context.Context, username string) (model.ContentSet, error)
}

// Throttle blocks until a request to rawURL may proceed
type Throttle interface {
	Wait(ctx context.Context, rawURL string) error
}

// crawlDelayer is implemented by throttles that honor robots.txt Crawl-delay
type crawlDelayer interface {
	ApplyCrawlDelay(rawURL string, delay time.Duration)
}

// RobotsPolicy reports whether a URL may be fetched
type RobotsPolicy interface {
	CanFetch(ctx context.Context, rawURL string) (bool, time.Duration, error)
}

// RedditClient reads an account's public submissions and comments from the
// Reddit JSON listing endpoints
type RedditClient struct {
	fetcher  *Fetcher
	throttle Throttle
	robots   RobotsPolicy
	baseURL  string
	limit    int
	log      logrus.FieldLogger
}

// RedditOption configures a RedditClient
type RedditOption func(*RedditClient)

// WithThrottle rate-limits listing requests
func WithThrottle(t Throttle) RedditOption {
	return func(c *RedditClient) { c.throttle = t }
}

// WithRobots consults robots.txt before each listing request
func WithRobots(r RobotsPolicy) RedditOption {
	return func(c *RedditClient) { c.robots = r }
}

// WithLimit sets the number of items requested per section
func WithLimit(n int) RedditOption {
	return func(c *RedditClient) {
		if n > 0 {
			c.limit = n
		}
	}
}

// WithLogger sets the logger for partial-failure warnings
func WithLogger(log logrus.FieldLogger) RedditOption {
	return func(c *RedditClient) {
		if log != nil {
			c.log = log
		}
	}
}

// NewRedditClient creates a client against baseURL (https://www.reddit.com in production)
func NewRedditClient(fetcher *Fetcher, baseURL string, opts ...RedditOption) *RedditClient {
	c := &RedditClient{
		fetcher: fetcher,
		baseURL: strings.TrimRight(baseURL, "/"),
		limit:   DefaultLimit,
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type listing struct {
	Data struct {
		Children []struct {
			Kind string    `json:"kind"`
			Data thingData `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type thingData struct {
	Title      string  `json:"title"`
	Selftext   string  `json:"selftext"`
	Body       string  `json:"body"`
	Permalink  string  `json:"permalink"`
	CreatedUTC float64 `json:"created_utc"`
}

// FetchUser fetches posts and comments for username. A failing section is
// logged and left empty; the error is returned only when both sections fail.
func (c *RedditClient) FetchUser(ctx context.Context, username string) (model.ContentSet, error) {
	username = ExtractUsername(username)
	if username == "" {
		return nil, fmt.Errorf("empty username")
	}

	set := model.NewContentSet()

	posts, postErr := c.fetchSection(ctx, username, "submitted", model.CategoryPost)
	if postErr != nil {
		c.log.WithFields(logrus.Fields{"user": username, "section": model.SectionPosts, "error": postErr}).Warn("fetch section failed")
	} else {
		set[model.SectionPosts] = posts
	}

	comments, commentErr := c.fetchSection(ctx, username, "comments", model.CategoryComment)
	if commentErr != nil {
		c.log.WithFields(logrus.Fields{"user": username, "section": model.SectionComments, "error": commentErr}).Warn("fetch section failed")
	} else {
		set[model.SectionComments] = comments
	}

	if postErr != nil && commentErr != nil {
		return nil, fmt.Errorf("fetch user %s: %w", username, errors.Join(postErr, commentErr))
	}
	return set, nil
}

func (c *RedditClient) fetchSection(ctx context.Context, username, endpoint string, category model.Category) ([]model.ContentItem, error) {
	rawURL := fmt.Sprintf("%s/user/%s/%s.json?limit=%d&raw_json=1", c.baseURL, url.PathEscape(username), endpoint, c.limit)

	if c.robots != nil {
		allowed, delay, err := c.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return nil, fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return nil, fmt.Errorf("%s: %w", rawURL, ErrDisallowed)
		}
		if d, ok := c.throttle.(crawlDelayer); ok {
			d.ApplyCrawlDelay(rawURL, delay)
		}
	}
	if c.throttle != nil {
		if err := c.throttle.Wait(ctx, rawURL); err != nil {
			return nil, fmt.Errorf("rate limit: %w", err)
		}
	}

	result, err := c.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	var l listing
	if err := json.Unmarshal(result.Body, &l); err != nil {
		return nil, fmt.Errorf("decode %s listing: %w", endpoint, err)
	}

	items := make([]model.ContentItem, 0, len(l.Data.Children))
	for _, child := range l.Data.Children {
		d := child.Data
		text := d.Body
		if category == model.CategoryPost {
			text = d.Title + "\n" + d.Selftext
		}

		item := model.ContentItem{
			Text:          text,
			SourceLocator: PermalinkHost + d.Permalink,
			Category:      category,
		}
		if d.CreatedUTC > 0 {
			ts := time.Unix(int64(d.CreatedUTC), 0).UTC()
			item.CreatedAt = &ts
		}
		items = append(items, item)
	}
	return items, nil
}

// ProfileURL returns the public profile page for username
func ProfileURL(username string) string {
	return PermalinkHost + "/user/" + url.PathEscape(username) + "/"
}

// ExtractUsername returns the last path segment of a profile URL
// ("https://www.reddit.com/user/kojied/" -> "kojied"). Bare names pass through.
func ExtractUsername(profile string) string {
	trimmed := strings.TrimRight(strings.TrimSpace(profile), "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}
