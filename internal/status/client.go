// ABOUTME: Status API client with timeout, retry on 429/5xx, caching and request coalescing
// ABOUTME: Maps transport failures onto the ErrTimeout / HTTPError / ConnectionError taxonomy

package status

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/mauromedda/echostatus/internal/log"
)

const (
	// DefaultBaseURL is the mcsrvstat.us v3 endpoint; the address is appended.
	DefaultBaseURL = "https://api.mcsrvstat.us/3/"

	// DefaultTimeout bounds a whole lookup, retries included.
	DefaultTimeout = 8 * time.Second

	defaultUserAgent = "echostatus/1.0"
	maxRetries       = 3
	baseBackoff      = 500 * time.Millisecond
	maxBackoff       = 4 * time.Second
	maxBodyBytes     = 2 << 20
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	CacheSize  int           // entries; <= 0 disables caching
	CacheTTL   time.Duration // <= 0 disables caching
	HTTPClient *http.Client
}

// Client looks up server status. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	timeout    time.Duration
	backoff    time.Duration
	cache      *expirable.LRU[string, *Server]
	group      singleflight.Group
	now        func() time.Time
}

// NewClient builds a Client from opts.
func NewClient(opts Options) *Client {
	c := &Client{
		httpClient: opts.HTTPClient,
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		timeout:    opts.Timeout,
		backoff:    baseBackoff,
		now:        time.Now,
	}
	if c.httpClient == nil {
		c.httpClient = newHTTPClient()
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if !strings.HasSuffix(c.baseURL, "/") {
		c.baseURL += "/"
	}
	if c.userAgent == "" {
		c.userAgent = defaultUserAgent
	}
	if c.timeout <= 0 {
		c.timeout = DefaultTimeout
	}
	if opts.CacheSize > 0 && opts.CacheTTL > 0 {
		c.cache = expirable.NewLRU[string, *Server](opts.CacheSize, nil, opts.CacheTTL)
	}
	return c
}

// newHTTPClient returns a client with bounded handshake and header timeouts.
// The overall deadline comes from the lookup context.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   5 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSClientConfig:       &tls.Config{MinVersion: tls.VersionTLS12},
			TLSHandshakeTimeout:   5 * time.Second,
			ResponseHeaderTimeout: 8 * time.Second,
			IdleConnTimeout:       30 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
		},
	}
}

// Lookup validates addr and returns its status, from cache when fresh.
// Concurrent lookups for the same address share one upstream request.
func (c *Client) Lookup(ctx context.Context, addr string) (*Server, error) {
	clean, err := ValidateAddress(addr)
	if err != nil {
		return nil, err
	}
	key := cacheKey(clean)

	if c.cache != nil {
		if s, ok := c.cache.Get(key); ok {
			log.Debug("status: cache hit for %s", key)
			return s, nil
		}
	}

	// The flight is detached from any single caller; fetch still bounds it
	// with c.timeout. Each caller stops waiting when its own ctx ends.
	flight := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		s, err := c.fetch(flight, clean)
		if err != nil {
			return nil, err
		}
		if c.cache != nil {
			c.cache.Add(key, s)
		}
		return s, nil
	})

	select {
	case <-ctx.Done():
		return nil, classify(ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		if res.Shared {
			log.Debug("status: shared in-flight lookup for %s", key)
		}
		return res.Val.(*Server), nil
	}
}

// fetch performs the upstream request with retries under the lookup timeout.
func (c *Client) fetch(ctx context.Context, addr string) (*Server, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	endpoint := c.baseURL + url.PathEscape(addr)
	started := c.now()

	var lastStatus int
	for attempt := range maxRetries {
		if attempt > 0 {
			if err := sleepWithContext(ctx, c.backoffFor(attempt-1)); err != nil {
				return nil, classify(err)
			}
		}

		resp, err := c.do(ctx, endpoint)
		if err != nil {
			return nil, classify(err)
		}

		if isRetryable(resp.StatusCode) {
			drain(resp)
			lastStatus = resp.StatusCode
			log.Debug("status: %s answered %d (attempt %d)", endpoint, resp.StatusCode, attempt+1)
			continue
		}

		s, err := c.readServer(resp)
		if err != nil {
			return nil, err
		}
		log.Debug("status: %s resolved in %s", addr, c.now().Sub(started))
		return s, nil
	}

	return nil, &HTTPError{StatusCode: lastStatus}
}

func (c *Client) do(ctx context.Context, endpoint string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return c.httpClient.Do(req)
}

func (c *Client) readServer(resp *http.Response) (*Server, error) {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, classify(fmt.Errorf("reading response: %w", err))
	}

	p, err := decodePayload(body)
	if err != nil {
		return nil, &ConnectionError{Err: fmt.Errorf("decoding status: %w", err)}
	}
	return normalize(p, c.now()), nil
}

// classify maps transport errors to ErrTimeout or ConnectionError.
func classify(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return ErrTimeout
	}
	return &ConnectionError{Err: err}
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
	resp.Body.Close()
}

// isRetryable returns true for status codes that warrant a retry.
func isRetryable(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// backoffFor returns the exponential backoff before retry number attempt+1.
func (c *Client) backoffFor(attempt int) time.Duration {
	d := time.Duration(float64(c.backoff) * math.Pow(2, float64(attempt)))
	if d > maxBackoff {
		d = maxBackoff
	}
	return d
}

// sleepWithContext waits for the given duration or until the context is cancelled.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
