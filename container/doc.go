// Package container provides the service-registration collection and
// resolution context the client factory rides on.
//
// It is deliberately narrow: string-keyed bindings with transient and
// singleton lifetimes, pre-built instances, aliases, and a generic Resolve
// helper. There is no auto-wiring — Go has no constructor metadata to
// reflect over — so every binding is an explicit factory function.
//
// # Bindings
//
//	c := container.New()
//
//	// Transient — factory runs on every Make
//	c.Bind("audio", func(c *container.Container) any { return newAudio(c) })
//
//	// Singleton — factory runs once, result cached
//	c.Singleton("config", func(c *container.Container) any { return config.Load() })
//
//	// Pre-built value
//	c.Instance("metrics", collector)
//
// # Resolving
//
//	raw := c.Make("config")
//	cfg := container.Resolve[*config.Config](c, "config")
//
// # Phases
//
// Hosts are expected to finish all registration before resolving
// concurrently (single writer, then many readers). ServiceProvider and
// ProviderRegistry give that discipline a shape: Register phases bind,
// Boot phases resolve.
package container
