package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder receives factory lifecycle events. The factory layer talks to
// this interface so hosts can run without prometheus wired in.
type Recorder interface {
	// ClientConstructed records a successful raw-client construction.
	ClientConstructed(name string)
	// ClientCacheHit records a CreateClient call served from the cache.
	ClientCacheHit(name string)
	// ClientConstructionFailed records a construction aborted by a
	// configuration-action error.
	ClientConstructionFailed(name string)
	// ActivatorBuilt records the one-time build of a typed-client activator.
	ActivatorBuilt(target string)
	// TypedClientConstructed records a typed-client adapter construction.
	TypedClientConstructed(target string)
}

// Nop is a Recorder that discards every event.
type Nop struct{}

func (Nop) ClientConstructed(string)        {}
func (Nop) ClientCacheHit(string)           {}
func (Nop) ClientConstructionFailed(string) {}
func (Nop) ActivatorBuilt(string)           {}
func (Nop) TypedClientConstructed(string)   {}

// Collector is a prometheus-backed Recorder with its own private registry.
type Collector struct {
	registry *prometheus.Registry

	clientConstructions *prometheus.CounterVec
	cacheHits           *prometheus.CounterVec
	constructionErrors  *prometheus.CounterVec
	activatorBuilds     *prometheus.CounterVec
	typedConstructions  *prometheus.CounterVec
}

var _ Recorder = (*Collector)(nil)

// NewCollector creates a Collector with all metrics registered under the
// "vkfactory" namespace.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		clientConstructions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vkfactory",
			Name:      "client_constructions_total",
			Help:      "Raw clients constructed, by logical name.",
		}, []string{"name"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vkfactory",
			Name:      "client_cache_hits_total",
			Help:      "CreateClient calls served from the per-name cache.",
		}, []string{"name"}),
		constructionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vkfactory",
			Name:      "client_construction_errors_total",
			Help:      "Client constructions aborted by configuration errors.",
		}, []string{"name"}),
		activatorBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vkfactory",
			Name:      "activator_builds_total",
			Help:      "Typed-client activators built, by target type.",
		}, []string{"target"}),
		typedConstructions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vkfactory",
			Name:      "typed_client_constructions_total",
			Help:      "Typed-client adapters constructed, by target type.",
		}, []string{"target"}),
	}

	c.registry.MustRegister(
		c.clientConstructions,
		c.cacheHits,
		c.constructionErrors,
		c.activatorBuilds,
		c.typedConstructions,
	)
	return c
}

func (c *Collector) ClientConstructed(name string) {
	c.clientConstructions.WithLabelValues(name).Inc()
}

func (c *Collector) ClientCacheHit(name string) {
	c.cacheHits.WithLabelValues(name).Inc()
}

func (c *Collector) ClientConstructionFailed(name string) {
	c.constructionErrors.WithLabelValues(name).Inc()
}

func (c *Collector) ActivatorBuilt(target string) {
	c.activatorBuilds.WithLabelValues(target).Inc()
}

func (c *Collector) TypedClientConstructed(target string) {
	c.typedConstructions.WithLabelValues(target).Inc()
}

// Handler returns an HTTP handler serving the collector's registry in the
// prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
