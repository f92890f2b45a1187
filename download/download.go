package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrEmptyURL is returned when Fetch is given a blank URL.
	ErrEmptyURL = errors.New("download: empty url")

	// ErrBadStatus is returned for any non-2xx HTTP response.
	ErrBadStatus = errors.New("download: bad response status")
)

// Option configures a Client.
type Option func(*Options)

// Options holds client construction parameters.
type Options struct {
	// HTTPClient issues the requests. Defaults to http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives one entry per fetch. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger

	// Force redownloads even when the cache already holds the file.
	Force bool

	// Concurrency bounds FetchAll. Defaults to 4.
	Concurrency int
}

// DefaultOptions returns the default client parameters.
func DefaultOptions() Options {
	return Options{
		HTTPClient:  http.DefaultClient,
		Logger:      logrus.StandardLogger(),
		Concurrency: 4,
	}
}

// WithHTTPClient swaps the transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) { o.HTTPClient = c }
}

// WithLogger swaps the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithForce bypasses the cache on every fetch.
func WithForce() Option {
	return func(o *Options) { o.Force = true }
}

// WithConcurrency bounds parallel downloads in FetchAll; values below 1
// fall back to the default.
func WithConcurrency(n int) Option {
	return func(o *Options) { o.Concurrency = n }
}

// Client downloads files into one cache directory.
type Client struct {
	cacheDir string
	opts     Options
}

// NewClient returns a client caching under dir. An empty dir falls back to
// the user cache directory.
func NewClient(dir string, opts ...Option) (*Client, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = DefaultOptions().Concurrency
	}
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("download: resolve cache dir: %w", err)
		}
		dir = filepath.Join(base, "ontograph")
	}
	return &Client{cacheDir: dir, opts: cfg}, nil
}

// CacheDir returns the client's cache directory.
func (c *Client) CacheDir() string { return c.cacheDir }

// Resource is one FetchAll item.
type Resource struct {
	URL      string
	Filename string // optional; derived from the URL path when empty
}

// Fetch returns the local path of url's content, downloading it into the
// cache when absent. filename names the cached file; when empty the last
// URL path segment is used.
func (c *Client) Fetch(ctx context.Context, rawURL, filename string) (string, error) {
	if rawURL == "" {
		return "", ErrEmptyURL
	}
	if filename == "" {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", fmt.Errorf("download: parse url %q: %w", rawURL, err)
		}
		filename = path.Base(u.Path)
	}
	dest := filepath.Join(c.cacheDir, filename)

	log := c.opts.Logger.WithFields(logrus.Fields{"url": rawURL, "path": dest})
	if !c.opts.Force {
		if _, err := os.Stat(dest); err == nil {
			log.Debug("cache hit")
			return dest, nil
		}
	}

	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("download: create cache dir: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("download: build request: %w", err)
	}
	resp, err := c.opts.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("download: get %q: %w", rawURL, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: %s returned %d", ErrBadStatus, rawURL, resp.StatusCode)
	}

	tmp, err := os.CreateTemp(c.cacheDir, filename+".part-*")
	if err != nil {
		return "", fmt.Errorf("download: create temp file: %w", err)
	}
	n, err := io.Copy(tmp, resp.Body)
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("download: write %q: %w", dest, err)
	}
	if err := os.Rename(tmp.Name(), dest); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("download: finalize %q: %w", dest, err)
	}

	log.WithField("bytes", n).Info("downloaded")
	return dest, nil
}

// FetchAll downloads every resource with bounded concurrency and returns
// the local paths in input order. The first failure cancels the rest.
func (c *Client) FetchAll(ctx context.Context, resources []Resource) ([]string, error) {
	paths := make([]string, len(resources))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.opts.Concurrency)
	for i, res := range resources {
		i, res := i, res
		g.Go(func() error {
			p, err := c.Fetch(ctx, res.URL, res.Filename)
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}
