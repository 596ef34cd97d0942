package transfermarkt

import (
	"bytes"
	"context"
	"math/rand/v2"
	"net/http"
	"strings"
	"sync"
	"time"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/PuerkitoBio/goquery"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-resty/resty/v2"
	"github.com/riskibarqy/garuda-scout/internal/platform/logging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL  = "https://www.transfermarkt.co.id"
	defaultMinDelay = 3 * time.Second
	defaultMaxDelay = 7 * time.Second
	defaultTimeout  = 15 * time.Second
	acceptLanguage  = "id-ID,id;q=0.9,en;q=0.8"
)

// SleepFunc blocks for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

type ClientConfig struct {
	BaseURL          string
	MinDelay         time.Duration
	MaxDelay         time.Duration
	Timeout          time.Duration
	CloudflareBypass bool
	Logger           *logging.Logger
	Sleep            SleepFunc
	Rand             *rand.Rand
}

// Client is the only way the scraper talks to the source. Every Fetch waits
// a random delay first, so throttling cannot be bypassed by callers.
type Client struct {
	http     *resty.Client
	baseURL  string
	minDelay time.Duration
	maxDelay time.Duration
	logger   *logging.Logger
	sleep    SleepFunc

	mu  sync.Mutex
	rng *rand.Rand
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	minDelay, maxDelay := cfg.MinDelay, cfg.MaxDelay
	if minDelay <= 0 && maxDelay <= 0 {
		minDelay, maxDelay = defaultMinDelay, defaultMaxDelay
	}
	if minDelay < 0 {
		minDelay = 0
	}
	if maxDelay < minDelay {
		maxDelay = minDelay
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New()
	client.SetTimeout(timeout)
	client.SetRetryCount(0)
	client.SetHeader("Accept", "text/html,application/xhtml+xml")
	client.SetHeader("Accept-Language", acceptLanguage)
	client.SetHeader("Referer", baseURL+"/")

	transport := client.GetClient().Transport
	if cfg.CloudflareBypass {
		transport = cloudflarebp.AddCloudFlareByPass(transport)
	}
	client.SetTransport(otelhttp.NewTransport(transport,
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return "transfermarkt " + r.Method
		}),
	))

	sleep := cfg.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}

	return &Client{
		http:     client,
		baseURL:  baseURL,
		minDelay: minDelay,
		maxDelay: maxDelay,
		logger:   logger,
		sleep:    sleep,
		rng:      rng,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Fetch waits the politeness delay, then GETs url and parses it as HTML.
// 403 is ErrBlocked, any other non-200 is an *HTTPStatusError marked
// ErrHTTPStatus, and transport failures are ErrConnection. Nothing is retried.
func (c *Client) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	delay, userAgent := c.next()
	c.logger.DebugContext(ctx, "scrape delay", "url", url, "delay", delay)
	if err := c.sleep(ctx, delay); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("User-Agent", userAgent).
		Get(url)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, crerr.Mark(crerr.Wrapf(err, "GET %s", url), ErrConnection)
	}

	switch status := resp.StatusCode(); {
	case status == http.StatusOK:
	case status == http.StatusForbidden:
		return nil, crerr.Wrapf(ErrBlocked, "GET %s", url)
	default:
		return nil, crerr.Mark(&HTTPStatusError{URL: url, StatusCode: status}, ErrHTTPStatus)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return nil, crerr.Wrapf(err, "parse html %s", url)
	}
	return doc, nil
}

func (c *Client) next() (time.Duration, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delay := c.minDelay
	if span := c.maxDelay - c.minDelay; span > 0 {
		delay += time.Duration(c.rng.Int64N(int64(span) + 1))
	}
	return delay, userAgents[c.rng.IntN(len(userAgents))]
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
