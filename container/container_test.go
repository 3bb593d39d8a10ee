package container_test

import (
	"sync"
	"testing"

	"github.com/arcline/vkfactory/container"
)

// ── Bindings ──────────────────────────────────────────────────────────────────

func TestBind_TransientReturnsFreshInstances(t *testing.T) {
	c := container.New()
	c.Bind("counter", func(c *container.Container) any {
		return new(int)
	})

	a := c.Make("counter")
	b := c.Make("counter")
	if a == b {
		t.Error("transient binding should produce a new instance per Make")
	}
}

func TestSingleton_SameInstanceEveryMake(t *testing.T) {
	c := container.New()
	calls := 0
	c.Singleton("svc", func(c *container.Container) any {
		calls++
		return new(int)
	})

	a := c.Make("svc")
	b := c.Make("svc")
	if a != b {
		t.Error("singleton binding should cache its instance")
	}
	if calls != 1 {
		t.Errorf("singleton factory ran %d times, want 1", calls)
	}
}

func TestInstance_ReturnedAsIs(t *testing.T) {
	c := container.New()
	v := &struct{ n int }{n: 7}
	c.Instance("val", v)

	if got := c.Make("val"); got != any(v) {
		t.Errorf("Instance: got %v, want the registered value", got)
	}
}

func TestRebind_DropsCachedSingleton(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(c *container.Container) any { return "first" })
	_ = c.Make("svc")

	c.Singleton("svc", func(c *container.Container) any { return "second" })
	if got := c.Make("svc").(string); got != "second" {
		t.Errorf("after rebind: got %q, want 'second'", got)
	}
}

func TestAlias_ResolvesThroughCanonicalKey(t *testing.T) {
	c := container.New()
	c.Instance("config", "cfg-value")
	c.Alias("config", "configuration")

	if got := c.Make("configuration").(string); got != "cfg-value" {
		t.Errorf("alias resolution: got %q", got)
	}
}

func TestAlias_SelfAliasPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("self-alias should panic")
		}
	}()
	container.New().Alias("x", "x")
}

func TestMake_UnboundPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Make on an unbound key should panic")
		}
	}()
	container.New().Make("nothing-here")
}

// ── Introspection ─────────────────────────────────────────────────────────────

func TestBound_And_Resolved(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(c *container.Container) any { return 1 })

	if !c.Bound("svc") {
		t.Error("Bound should be true after Singleton")
	}
	if c.Resolved("svc") {
		t.Error("Resolved should be false before first Make")
	}
	_ = c.Make("svc")
	if !c.Resolved("svc") {
		t.Error("Resolved should be true after Make")
	}
}

func TestForget_RemovesBindingAndInstance(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(c *container.Container) any { return 1 })
	_ = c.Make("svc")

	c.Forget("svc")
	if c.Bound("svc") {
		t.Error("Forget should remove the binding")
	}
}

func TestFlush_KeepsSelfBinding(t *testing.T) {
	c := container.New()
	c.Instance("x", 1)
	c.Flush()

	if c.Bound("x") {
		t.Error("Flush should drop user bindings")
	}
	if !c.Bound("container") {
		t.Error("Flush should keep the container's self binding")
	}
}

// ── Generic helpers ───────────────────────────────────────────────────────────

func TestResolve_TypedAssertion(t *testing.T) {
	c := container.New()
	c.Instance("n", 42)

	if got := container.Resolve[int](c, "n"); got != 42 {
		t.Errorf("Resolve[int]: got %d, want 42", got)
	}
}

func TestResolve_WrongTypePanics(t *testing.T) {
	c := container.New()
	c.Instance("n", 42)

	defer func() {
		if recover() == nil {
			t.Error("Resolve with wrong type should panic")
		}
	}()
	_ = container.Resolve[string](c, "n")
}

func TestTryResolve_ReportsMismatch(t *testing.T) {
	c := container.New()
	c.Instance("n", 42)

	if _, ok := container.TryResolve[string](c, "n"); ok {
		t.Error("TryResolve with wrong type should report ok=false")
	}
	if v, ok := container.TryResolve[int](c, "n"); !ok || v != 42 {
		t.Errorf("TryResolve[int]: got (%d, %v)", v, ok)
	}
}

type keyedType struct{}

func TestTypeKey_PackageQualified(t *testing.T) {
	key := container.TypeKey((*keyedType)(nil))
	want := "github.com/arcline/vkfactory/container_test.keyedType"
	if key != want {
		t.Errorf("TypeKey: got %q, want %q", key, want)
	}
}

// ── Concurrency ───────────────────────────────────────────────────────────────

func TestSingleton_ConcurrentMakeSharesOneInstance(t *testing.T) {
	c := container.New()
	c.Singleton("svc", func(c *container.Container) any { return new(int) })

	const workers = 32
	results := make([]any, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			results[i] = c.Make("svc")
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if results[i] != results[0] {
			t.Fatal("concurrent Make of a singleton returned different instances")
		}
	}
}
