package vkfactory

import (
	"sync"

	"github.com/arcline/vkfactory/config"
	"github.com/arcline/vkfactory/container"
	"github.com/arcline/vkfactory/metrics"
	"github.com/arcline/vkfactory/vkapi"
)

// DefaultClientName is the logical name used when the host configures a
// single, unnamed client.
const DefaultClientName = "default"

// Container keys under which the factory stack binds itself. Hosts normally
// reach the pieces through AddClient / Resolve rather than these keys
// directly.
const (
	KeyConfig        = "vk.config"
	KeyMetrics       = "vk.metrics"
	KeyOptions       = "vk.options"
	KeyClientFactory = "vk.clients"
	KeyTypedFactory  = "vk.typed"
)

// ClientFactory builds named raw clients and caches them per logical name.
// At most one client is ever constructed per name, even under concurrent
// first access; a construction aborted by a configuration-action error
// leaves the slot empty so the next call retries.
//
// The cache is process-lifetime: there is no expiry and no invalidation.
type ClientFactory struct {
	collection *container.Container
	opts       *OptionsStore
	rec        metrics.Recorder

	mu    sync.Mutex
	cache map[string]*cacheEntry
}

// cacheEntry is a per-name slot. The constructing caller closes ready once
// the outcome is known; waiters block on it and then read client/err.
type cacheEntry struct {
	ready  chan struct{}
	client *vkapi.Client
	err    error
}

// NewClientFactory creates a factory over the given registration collection
// and options store. A nil opts gets a fresh store; a nil rec disables
// instrumentation.
func NewClientFactory(collection *container.Container, opts *OptionsStore, rec metrics.Recorder) *ClientFactory {
	if opts == nil {
		opts = NewOptionsStore(collection)
	}
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &ClientFactory{
		collection: collection,
		opts:       opts,
		rec:        rec,
		cache:      make(map[string]*cacheEntry),
	}
}

// Options returns the options store the factory replays at construction
// time.
func (f *ClientFactory) Options() *OptionsStore { return f.opts }

// CreateClient returns the client for name, constructing and caching it on
// first use. Repeat calls return the identical instance. Concurrent first
// callers block until the single in-flight construction finishes and then
// share its outcome.
//
// A configuration-action error propagates unmodified and leaves the cache
// unpopulated for name, so actions with external side effects are not
// guaranteed at-most-once execution; only successful cache population is.
func (f *ClientFactory) CreateClient(name string) (*vkapi.Client, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	f.mu.Lock()
	if e, ok := f.cache[name]; ok {
		f.mu.Unlock()
		<-e.ready
		if e.err != nil {
			return nil, e.err
		}
		f.rec.ClientCacheHit(name)
		return e.client, nil
	}
	e := &cacheEntry{ready: make(chan struct{})}
	f.cache[name] = e
	f.mu.Unlock()

	client, err := f.build(name)
	if err != nil {
		// Unpopulate before waking waiters so the next CreateClient
		// retries construction.
		f.mu.Lock()
		delete(f.cache, name)
		f.mu.Unlock()
		e.err = err
		close(e.ready)
		f.rec.ClientConstructionFailed(name)
		return nil, err
	}
	e.client = client
	close(e.ready)
	f.rec.ClientConstructed(name)
	return client, nil
}

// build constructs one raw client for name: defaults, then env-driven
// config if bound, then the accumulated actions in registration order.
func (f *ClientFactory) build(name string) (*vkapi.Client, error) {
	rec := f.opts.snapshot(name)
	col := rec.collection
	if col == nil {
		col = f.collection
	}

	client := vkapi.New()
	if col != nil && col.Bound(KeyConfig) {
		if cfg, ok := container.TryResolve[*config.Config](col, KeyConfig); ok && cfg != nil {
			applyConfig(client, cfg)
		}
	}

	for _, action := range rec.actions {
		if err := action(col, client); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// applyConfig copies the non-zero config fields onto a fresh client.
func applyConfig(c *vkapi.Client, cfg *config.Config) {
	if cfg.AccessToken != "" {
		c.AccessToken = cfg.AccessToken
	}
	if cfg.Version != "" {
		c.Version = cfg.Version
	}
	if cfg.Language != "" {
		c.Language = cfg.Language
	}
	if cfg.UserAgent != "" {
		c.UserAgent = cfg.UserAgent
	}
	if cfg.BaseURL != "" {
		c.BaseURL = cfg.BaseURL
	}
	if cfg.RequestTimeout > 0 {
		c.RequestTimeout = cfg.RequestTimeout
		if c.HTTPClient != nil {
			c.HTTPClient.Timeout = cfg.RequestTimeout
		}
	}
}
