package loader

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/bioqueries/ontograph/download"
	"github.com/bioqueries/ontograph/graph"
	"github.com/bioqueries/ontograph/obo"
	"github.com/bioqueries/ontograph/query"
	"github.com/bioqueries/ontograph/registry"
)

// Backend selects the query engine implementation.
type Backend string

const (
	// BackendMatrix queries the compiled sparse adjacency matrices.
	BackendMatrix Backend = "matrix"
	// BackendObject walks the parsed term objects directly.
	BackendObject Backend = "object"
)

var (
	// ErrUnsupportedFormat is returned for formats the parser cannot
	// read; only OBO is supported.
	ErrUnsupportedFormat = errors.New("loader: unsupported format")

	// ErrUnknownBackend is returned for a Backend value that names no
	// engine.
	ErrUnknownBackend = errors.New("loader: unknown backend")
)

// Option configures a Loader.
type Option func(*Options)

// Options holds loader construction parameters.
type Options struct {
	// CacheDir is handed to the download client. Empty means the user
	// cache directory.
	CacheDir string

	// Backend picks the engine implementation. Defaults to BackendMatrix.
	Backend Backend

	// IncludeObsolete keeps obsolete terms queryable.
	IncludeObsolete bool

	// RegistryURL overrides the OBO Foundry registry location.
	RegistryURL string

	// Logger defaults to the logrus standard logger.
	Logger logrus.FieldLogger

	// HTTPClient is handed to the download client.
	HTTPClient *http.Client
}

// DefaultOptions returns the default loader parameters.
func DefaultOptions() Options {
	return Options{
		Backend:    BackendMatrix,
		Logger:     logrus.StandardLogger(),
		HTTPClient: http.DefaultClient,
	}
}

// WithCacheDir sets the download cache directory.
func WithCacheDir(dir string) Option {
	return func(o *Options) { o.CacheDir = dir }
}

// WithBackend picks the engine implementation.
func WithBackend(b Backend) Option {
	return func(o *Options) { o.Backend = b }
}

// WithObsolete keeps obsolete terms queryable.
func WithObsolete() Option {
	return func(o *Options) { o.IncludeObsolete = true }
}

// WithRegistryURL overrides the registry location.
func WithRegistryURL(url string) Option {
	return func(o *Options) { o.RegistryURL = url }
}

// WithLogger swaps the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithHTTPClient swaps the HTTP transport.
func WithHTTPClient(c *http.Client) Option {
	return func(o *Options) { o.HTTPClient = c }
}

// Loaded is one ready-to-query ontology.
type Loaded struct {
	// ID is the catalog id or, for file/URL loads, the source basename.
	ID string

	// Source is the parsed document.
	Source *obo.Ontology

	// Graph holds the compiled matrices; nil on the object backend.
	Graph *graph.Graph

	// Engine answers every structural query.
	Engine query.Engine

	// Meta is the registry entry; nil unless loaded from the catalog.
	Meta *registry.Ontology
}

// Loader builds Loaded ontologies from files, URLs or the catalog.
type Loader struct {
	opts Options
	dl   *download.Client
}

// New returns a Loader.
func New(opts ...Option) (*Loader, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	switch cfg.Backend {
	case BackendMatrix, BackendObject:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.Backend)
	}
	dl, err := download.NewClient(cfg.CacheDir,
		download.WithHTTPClient(cfg.HTTPClient),
		download.WithLogger(cfg.Logger),
	)
	if err != nil {
		return nil, err
	}
	return &Loader{opts: cfg, dl: dl}, nil
}

// Catalog returns the registry, downloading it through the cache when
// absent.
func (l *Loader) Catalog(ctx context.Context) (*registry.Catalog, error) {
	return registry.FetchCatalog(ctx, l.dl, l.opts.RegistryURL)
}

// LoadFromFile parses and compiles a local OBO file.
func (l *Loader) LoadFromFile(path string) (*Loaded, error) {
	if format := strings.TrimPrefix(filepath.Ext(path), "."); format != "obo" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	ont, err := obo.ParseFile(path)
	if err != nil {
		return nil, err
	}
	id := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return l.assemble(id, ont, nil)
}

// LoadFromURL fetches an OBO file through the cache, then loads it.
func (l *Loader) LoadFromURL(ctx context.Context, url, filename string) (*Loaded, error) {
	path, err := l.dl.Fetch(ctx, url, filename)
	if err != nil {
		return nil, err
	}
	return l.LoadFromFile(path)
}

// LoadFromCatalog resolves id and format against the registry and loads
// the ontology through the cache.
func (l *Loader) LoadFromCatalog(ctx context.Context, id, format string) (*Loaded, error) {
	if format != "obo" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	cat, err := l.Catalog(ctx)
	if err != nil {
		return nil, err
	}
	meta, err := cat.Metadata(id)
	if err != nil {
		return nil, err
	}
	url, err := cat.DownloadURL(id, format)
	if err != nil {
		return nil, err
	}
	path, err := l.dl.Fetch(ctx, url, id+"."+format)
	if err != nil {
		return nil, err
	}
	ont, err := obo.ParseFile(path)
	if err != nil {
		return nil, err
	}
	loaded, err := l.assemble(id, ont, meta)
	if err != nil {
		return nil, err
	}
	return loaded, nil
}

// assemble builds the configured engine over a parsed document.
func (l *Loader) assemble(id string, ont *obo.Ontology, meta *registry.Ontology) (*Loaded, error) {
	var gopts []graph.Option
	if l.opts.IncludeObsolete {
		gopts = append(gopts, graph.WithObsolete())
	}

	loaded := &Loaded{ID: id, Source: ont, Meta: meta}
	switch l.opts.Backend {
	case BackendMatrix:
		g, err := graph.New(ont, gopts...)
		if err != nil {
			return nil, err
		}
		eng, err := query.NewMatrixEngine(g)
		if err != nil {
			return nil, err
		}
		loaded.Graph = g
		loaded.Engine = eng
	case BackendObject:
		eng, err := query.NewObjectEngine(ont, gopts...)
		if err != nil {
			return nil, err
		}
		loaded.Engine = eng
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, l.opts.Backend)
	}

	l.opts.Logger.WithFields(logrus.Fields{
		"id":      id,
		"terms":   len(ont.Terms),
		"backend": string(l.opts.Backend),
	}).Info("ontology loaded")
	return loaded, nil
}
