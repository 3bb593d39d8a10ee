package vkfactory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcline/vkfactory"
	"github.com/arcline/vkfactory/container"
	"github.com/arcline/vkfactory/vkapi"
)

// ── AddClient ─────────────────────────────────────────────────────────────────

func TestAddClient_BindsFactoryStackOnce(t *testing.T) {
	t.Parallel()

	c := container.New()
	vkfactory.AddClient(c, "a")
	vkfactory.AddClient(c, "b")

	require.True(t, c.Bound(vkfactory.KeyOptions))
	require.True(t, c.Bound(vkfactory.KeyClientFactory))
	require.True(t, c.Bound(vkfactory.KeyTypedFactory))

	// Both builders share one factory singleton.
	f1 := container.Resolve[*vkfactory.ClientFactory](c, vkfactory.KeyClientFactory)
	f2 := container.Resolve[*vkfactory.ClientFactory](c, vkfactory.KeyClientFactory)
	assert.Same(t, f1, f2)
}

func TestAddClient_EmptyNameScopesToDefault(t *testing.T) {
	t.Parallel()

	b := vkfactory.AddClient(container.New(), "")
	assert.Equal(t, vkfactory.DefaultClientName, b.Name)
}

func TestAddClient_NilCollectionPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		require.Equal(t, vkfactory.ErrNilCollection, recover())
	}()
	vkfactory.AddClient(nil, "x")
}

func TestBuilder_ConfigureChainsAndApplies(t *testing.T) {
	t.Parallel()

	c := container.New()
	b := vkfactory.AddClient(c, "community").
		Configure(func(cl *vkapi.Client) error {
			cl.AccessToken = "tok"
			return nil
		}).
		Configure(func(cl *vkapi.Client) error {
			cl.Language = "ru"
			return nil
		})

	cl, err := b.Factory().CreateClient("community")
	require.NoError(t, err)
	assert.Equal(t, "tok", cl.AccessToken)
	assert.Equal(t, "ru", cl.Language)
}

func TestBuilder_ConfigureWithResolvesCollaborators(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Instance("app.token", "from-container")

	b := vkfactory.AddClient(c, "svc").
		ConfigureWith(func(col *container.Container, cl *vkapi.Client) error {
			cl.AccessToken = container.Resolve[string](col, "app.token")
			return nil
		})

	cl, err := b.Factory().CreateClient("svc")
	require.NoError(t, err)
	assert.Equal(t, "from-container", cl.AccessToken)
}

// ── Typed clients through the container ───────────────────────────────────────

type wallFacade struct {
	raw *vkapi.Client
}

func TestAddTypedClient_DefaultNameIsTypeName(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, vkfactory.AddTyped(c, vkfactory.TypedClientConfig[wallFacade]{
		Constructor: func(_ *container.Container, raw *vkapi.Client) (wallFacade, error) {
			return wallFacade{raw: raw}, nil
		},
	}))

	facade := vkfactory.ResolveTyped[wallFacade](c)

	// The raw client handed to the adapter is the one cached under the
	// type-name default.
	f := container.Resolve[*vkfactory.ClientFactory](c, vkfactory.KeyClientFactory)
	cached, err := f.CreateClient("wallFacade")
	require.NoError(t, err)
	assert.Same(t, cached, facade.raw)
}

func TestAddTypedClient_BuilderScopedName(t *testing.T) {
	t.Parallel()

	c := container.New()
	b := vkfactory.AddClient(c, "community").
		Configure(func(cl *vkapi.Client) error {
			cl.AccessToken = "community-token"
			return nil
		})
	vkfactory.AddTypedClient(b, func(_ *container.Container, raw *vkapi.Client) (*wallFacade, error) {
		return &wallFacade{raw: raw}, nil
	})

	facade := vkfactory.ResolveTyped[*wallFacade](c)
	assert.Equal(t, "community-token", facade.raw.AccessToken)

	cached, err := b.Factory().CreateClient("community")
	require.NoError(t, err)
	assert.Same(t, cached, facade.raw)
}

func TestAddTypedClient_TransientAdapterOverCachedRaw(t *testing.T) {
	t.Parallel()

	c := container.New()
	b := vkfactory.AddClient(c, "svc")
	vkfactory.AddTypedClient(b, func(_ *container.Container, raw *vkapi.Client) (*wallFacade, error) {
		return &wallFacade{raw: raw}, nil
	})

	first := vkfactory.ResolveTyped[*wallFacade](c)
	second := vkfactory.ResolveTyped[*wallFacade](c)

	assert.NotSame(t, first, second)
	assert.Same(t, first.raw, second.raw)
}

func TestAddTypedClientFunc_BypassReceivesCachedRawEveryResolution(t *testing.T) {
	t.Parallel()

	c := container.New()
	var seen []*vkapi.Client
	b := vkfactory.AddClient(c, "svc")
	vkfactory.AddTypedClientFunc(b, func(raw *vkapi.Client) (*wallFacade, error) {
		seen = append(seen, raw)
		return &wallFacade{raw: raw}, nil
	})

	_ = vkfactory.ResolveTyped[*wallFacade](c)
	_ = vkfactory.ResolveTyped[*wallFacade](c)

	cached, err := b.Factory().CreateClient("svc")
	require.NoError(t, err)
	require.Len(t, seen, 2)
	assert.Same(t, cached, seen[0])
	assert.Same(t, cached, seen[1])
}

func TestAddTyped_InlineConfigureAction(t *testing.T) {
	t.Parallel()

	c := container.New()
	require.NoError(t, vkfactory.AddTyped(c, vkfactory.TypedClientConfig[wallFacade]{
		Name: "inline",
		Factory: func(raw *vkapi.Client) (wallFacade, error) {
			return wallFacade{raw: raw}, nil
		},
		Configure: func(cl *vkapi.Client) error {
			cl.Language = "en"
			return nil
		},
	}))

	facade := vkfactory.ResolveTyped[wallFacade](c)
	assert.Equal(t, "en", facade.raw.Language)
}

func TestAddTyped_ContextFactoryVariant(t *testing.T) {
	t.Parallel()

	c := container.New()
	c.Instance("facade.tag", "ctx")
	require.NoError(t, vkfactory.AddTyped(c, vkfactory.TypedClientConfig[wallFacade]{
		Name: "svc",
		ContextFactory: func(col *container.Container, raw *vkapi.Client) (wallFacade, error) {
			raw.SetHeader("X-Tag", container.Resolve[string](col, "facade.tag"))
			return wallFacade{raw: raw}, nil
		},
	}))

	facade := vkfactory.ResolveTyped[wallFacade](c)
	assert.Equal(t, "ctx", facade.raw.Headers["X-Tag"])
}

// ── Argument errors ───────────────────────────────────────────────────────────

func TestAddTyped_RequiresSomeConstructor(t *testing.T) {
	t.Parallel()

	err := vkfactory.AddTyped(container.New(), vkfactory.TypedClientConfig[wallFacade]{Name: "x"})
	require.ErrorIs(t, err, vkfactory.ErrNilConstructor)
}

func TestAddTyped_NilCollection(t *testing.T) {
	t.Parallel()

	err := vkfactory.AddTyped[wallFacade](nil, vkfactory.TypedClientConfig[wallFacade]{})
	require.ErrorIs(t, err, vkfactory.ErrNilCollection)
}

func TestAddTypedClient_NilBuilderPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		require.Equal(t, vkfactory.ErrNilBuilder, recover())
	}()
	vkfactory.AddTypedClient(nil, func(_ *container.Container, raw *vkapi.Client) (*wallFacade, error) {
		return &wallFacade{raw: raw}, nil
	})
}
