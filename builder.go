package vkfactory

import (
	"github.com/arcline/vkfactory/container"
	"github.com/arcline/vkfactory/metrics"
	"github.com/arcline/vkfactory/vkapi"
)

// Builder is a name-scoped handle over a registration collection. It
// carries no state of its own beyond the name and the collection reference;
// every chainable call delegates to the shared options store or the typed
// factory bound in that collection.
//
// Builders belong to the setup phase: finish all registration before
// resolving clients concurrently.
type Builder struct {
	// Name is the logical client name this builder configures.
	Name string

	// Collection is the registration collection the builder writes into.
	Collection *container.Container
}

// AddClient binds the shared factory stack into c (idempotently) and
// returns a builder scoped to name. An empty name scopes the builder to
// DefaultClientName. It panics on a nil collection: registration is a
// setup-phase programmer action.
func AddClient(c *container.Container, name string) *Builder {
	if c == nil {
		panic(ErrNilCollection)
	}
	if name == "" {
		name = DefaultClientName
	}
	ensureStack(c)
	return &Builder{Name: name, Collection: c}
}

// AddDefaultClient is AddClient with the default-name sentinel.
func AddDefaultClient(c *container.Container) *Builder {
	return AddClient(c, DefaultClientName)
}

// ensureStack binds the options store and both factories as singletons.
// Safe to call repeatedly; existing bindings are left alone.
func ensureStack(c *container.Container) {
	if c.Bound(KeyOptions) {
		return
	}
	c.Singleton(KeyOptions, func(c *container.Container) any {
		return NewOptionsStore(c)
	})
	c.Singleton(KeyClientFactory, func(c *container.Container) any {
		opts := container.Resolve[*OptionsStore](c, KeyOptions)
		return NewClientFactory(c, opts, recorderFrom(c))
	})
	c.Singleton(KeyTypedFactory, func(c *container.Container) any {
		return NewTypedClientFactory(c, recorderFrom(c))
	})
}

// recorderFrom returns the bound metrics recorder, or a no-op one.
func recorderFrom(c *container.Container) metrics.Recorder {
	if !c.Bound(KeyMetrics) {
		return metrics.Nop{}
	}
	if rec, ok := container.TryResolve[metrics.Recorder](c, KeyMetrics); ok {
		return rec
	}
	return metrics.Nop{}
}

// Configure appends a client-only configuration action for the builder's
// name. Actions replay in registration order at construction time. Panics
// on a nil action (setup-phase programmer error).
func (b *Builder) Configure(fn ConfigureFunc) *Builder {
	store := container.Resolve[*OptionsStore](b.Collection, KeyOptions)
	if err := store.Configure(b.Name, fn); err != nil {
		panic(err)
	}
	return b
}

// ConfigureWith appends a context-aware configuration action for the
// builder's name.
func (b *Builder) ConfigureWith(fn ConfigureContextFunc) *Builder {
	store := container.Resolve[*OptionsStore](b.Collection, KeyOptions)
	if err := store.ConfigureContext(b.Name, fn); err != nil {
		panic(err)
	}
	return b
}

// Factory resolves the client factory bound in the builder's collection.
func (b *Builder) Factory() *ClientFactory {
	return container.Resolve[*ClientFactory](b.Collection, KeyClientFactory)
}

// TypedClientConfig declares one typed-client binding. Exactly one of
// Constructor, Factory, or ContextFactory must be set:
//
//   - Constructor goes through the activator cache (built once per type).
//   - Factory / ContextFactory bypass the activator cache entirely and run
//     as supplied on every resolution.
//
// Name selects the raw client to adapt; empty defaults to T's type name,
// which enables zero-configuration typed-client registration. Configure,
// when set, appends an inline configuration action for that raw client.
type TypedClientConfig[T any] struct {
	Name           string
	Constructor    func(*container.Container, *vkapi.Client) (T, error)
	Factory        func(*vkapi.Client) (T, error)
	ContextFactory func(*container.Container, *vkapi.Client) (T, error)
	Configure      ConfigureFunc
}

// AddTyped registers a typed-client binding described by cfg. The binding
// is transient: every container resolution of T fetches the (per-name
// cached) raw client and constructs a fresh adapter from it.
func AddTyped[T any](c *container.Container, cfg TypedClientConfig[T]) error {
	if c == nil {
		return ErrNilCollection
	}
	ensureStack(c)

	name := cfg.Name
	if name == "" {
		name = typeOf[T]().Name()
	}
	if name == "" {
		// Unnamed types (pointers, funcs, ...) fall back to the sentinel.
		name = DefaultClientName
	}

	if cfg.Configure != nil {
		store := container.Resolve[*OptionsStore](c, KeyOptions)
		if err := store.Configure(name, cfg.Configure); err != nil {
			return err
		}
	}

	key := typedClientKey[T]()
	switch {
	case cfg.Factory != nil:
		fn := cfg.Factory
		bindAdapter(c, key, name, func(_ *container.Container, raw *vkapi.Client) (T, error) {
			return fn(raw)
		})
	case cfg.ContextFactory != nil:
		bindAdapter(c, key, name, cfg.ContextFactory)
	case cfg.Constructor != nil:
		tf := container.Resolve[*TypedClientFactory](c, KeyTypedFactory)
		if err := RegisterTypedClient(tf, cfg.Constructor); err != nil {
			return err
		}
		bindActivated[T](c, key, name)
	default:
		return ErrNilConstructor
	}
	return nil
}

// AddTypedClient declares T as a typed client over the builder's named raw
// client, constructed through the activator cache.
func AddTypedClient[T any](b *Builder, ctor func(*container.Container, *vkapi.Client) (T, error)) *Builder {
	if b == nil {
		panic(ErrNilBuilder)
	}
	if err := AddTyped(b.Collection, TypedClientConfig[T]{Name: b.Name, Constructor: ctor}); err != nil {
		panic(err)
	}
	return b
}

// AddTypedClientFunc declares T over the builder's named raw client using a
// custom factory function, bypassing the activator cache.
func AddTypedClientFunc[T any](b *Builder, fn func(*vkapi.Client) (T, error)) *Builder {
	if b == nil {
		panic(ErrNilBuilder)
	}
	if err := AddTyped(b.Collection, TypedClientConfig[T]{Name: b.Name, Factory: fn}); err != nil {
		panic(err)
	}
	return b
}

// ResolveTyped resolves the typed client T from the collection. Errors
// raised while building the raw client or the adapter surface as panics,
// matching container.Make semantics.
func ResolveTyped[T any](c *container.Container) T {
	return container.Resolve[T](c, typedClientKey[T]())
}

// typedClientKey is the container binding key for adapter type T.
func typedClientKey[T any]() string {
	return container.TypeKey((*T)(nil))
}

// bindAdapter registers the transient binding for a bypass-path typed
// client: resolve the named raw client, then run the user factory.
func bindAdapter[T any](c *container.Container, key, name string, fn func(*container.Container, *vkapi.Client) (T, error)) {
	c.Bind(key, func(c *container.Container) any {
		raw, err := container.Resolve[*ClientFactory](c, KeyClientFactory).CreateClient(name)
		if err != nil {
			panic(err)
		}
		v, err := fn(c, raw)
		if err != nil {
			panic(err)
		}
		return v
	})
}

// bindActivated registers the transient binding for an activator-path typed
// client: resolve the named raw client, then adapt through the typed
// factory.
func bindActivated[T any](c *container.Container, key, name string) {
	c.Bind(key, func(c *container.Container) any {
		raw, err := container.Resolve[*ClientFactory](c, KeyClientFactory).CreateClient(name)
		if err != nil {
			panic(err)
		}
		tf := container.Resolve[*TypedClientFactory](c, KeyTypedFactory)
		v, err := CreateTypedClient[T](tf, raw)
		if err != nil {
			panic(err)
		}
		return v
	})
}
