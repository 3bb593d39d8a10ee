package vkfactory

import (
	"github.com/arcline/vkfactory/config"
	"github.com/arcline/vkfactory/container"
	"github.com/arcline/vkfactory/metrics"
)

// FactoryProvider wires the whole factory stack into a container:
// env-driven client defaults, optional prometheus metrics, the options
// store, and both factories.
//
// Bound abstracts:
//   - KeyConfig        → *config.Config (singleton)
//   - KeyMetrics       → *metrics.Collector (only when EnableMetrics)
//   - KeyOptions       → *OptionsStore (singleton)
//   - KeyClientFactory → *ClientFactory (singleton)
//   - KeyTypedFactory  → *TypedClientFactory (singleton)
type FactoryProvider struct {
	container.BaseProvider

	// EnvFiles are passed to config.Load; empty means ".env".
	EnvFiles []string

	// EnableMetrics binds a prometheus collector under KeyMetrics.
	EnableMetrics bool
}

func (p *FactoryProvider) Register(c *container.Container) {
	envFiles := p.EnvFiles
	c.Singleton(KeyConfig, func(c *container.Container) any {
		return config.Load(envFiles...)
	})
	if p.EnableMetrics {
		c.Instance(KeyMetrics, metrics.NewCollector())
	}
	ensureStack(c)
}
