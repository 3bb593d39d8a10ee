package container

// ServiceProvider groups related bindings so hosts can compose their setup
// phase from reusable units.
//
// Register binds services into the container and must not resolve other
// bindings; Boot runs after every provider has registered, so resolving is
// safe there.
type ServiceProvider interface {
	Register(c *Container)
	Boot(c *Container)
}

// BaseProvider is an embeddable no-op Boot implementation for providers
// that only register bindings.
type BaseProvider struct{}

func (BaseProvider) Boot(_ *Container) {}

// ProviderRegistry tracks registered providers and drives the two-phase
// Register/Boot bootstrap.
type ProviderRegistry struct {
	c          *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		c:          c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register adds a provider and runs its Register phase. Registering the
// same provider value twice is a no-op. If the registry has already booted,
// the provider's Boot phase runs immediately.
func (r *ProviderRegistry) Register(p ServiceProvider) {
	if r.registered[p] {
		return
	}
	r.registered[p] = true

	p.Register(r.c)
	r.providers = append(r.providers, p)

	if r.booted {
		p.Boot(r.c)
	}
}

// Boot runs the Boot phase on all registered providers, once. Call after
// all providers have been registered.
func (r *ProviderRegistry) Boot() {
	if r.booted {
		return
	}
	r.booted = true
	for _, p := range r.providers {
		p.Boot(r.c)
	}
}

// Booted reports whether Boot has run.
func (r *ProviderRegistry) Booted() bool { return r.booted }

// Providers returns the registered providers in registration order.
func (r *ProviderRegistry) Providers() []ServiceProvider { return r.providers }
