// Package vkfactory provides named, independently configured instances of a
// VK-style social-network API client, riding on a small service container.
//
// # Overview
//
// Hosts register any number of logical client names during a setup phase,
// attach configuration actions per name, and later ask the factory for a
// ready client. Construction is lazy and cached: the first CreateClient for
// a name builds one raw client, replays that name's actions in registration
// order, and caches the instance for the life of the process.
//
//	c := container.New()
//
//	vkfactory.AddClient(c, "community").
//	    Configure(func(cl *vkapi.Client) error {
//	        cl.AccessToken = os.Getenv("COMMUNITY_TOKEN")
//	        return nil
//	    })
//
//	clients := container.Resolve[*vkfactory.ClientFactory](c, vkfactory.KeyClientFactory)
//	cl, err := clients.CreateClient("community")
//
// # Typed clients
//
// A typed client wraps the raw client behind a host-defined facade type and
// is resolved from the container like any other service. Constructors are
// explicit functions (no reflection over constructor signatures); the
// factory builds an activator per target type exactly once and reuses it,
// while every resolution constructs a fresh adapter over the per-name
// cached raw client.
//
//	type WallClient struct{ raw *vkapi.Client }
//
//	vkfactory.AddTypedClient(vkfactory.AddClient(c, "WallClient"),
//	    func(_ *container.Container, raw *vkapi.Client) (*WallClient, error) {
//	        return &WallClient{raw: raw}, nil
//	    })
//
//	wall := vkfactory.ResolveTyped[*WallClient](c)
//
// Custom factory functions can bypass the activator cache entirely via
// TypedClientConfig.Factory / ContextFactory.
//
// # Phases
//
// Registration (AddClient, Configure, AddTyped) is expected to complete
// before concurrent resolution begins: single writer, then many readers.
// The package documents this precondition rather than enforcing it. The
// client cache and the activator cache are the only structures mutated at
// steady state, and both are safe under concurrent first use: per name at
// most one client construction succeeds, and per target type the activator
// builds exactly once.
//
// # Errors
//
// Argument errors (empty name, nil action, nil raw client, nil
// constructor) surface synchronously as sentinel errors before any state
// changes. A configuration-action error aborts that construction,
// propagates to the CreateClient caller unmodified, and leaves the name's
// cache slot empty so a later call retries.
package vkfactory
