package container

import (
	"fmt"
	"reflect"
	"sync"
)

// Factory builds a concrete value from the container.
type Factory func(c *Container) any

// binding pairs a registered factory with its lifetime.
type binding struct {
	factory   Factory
	singleton bool
}

// Container is a small service-registration collection plus resolution
// context. Application code binds abstract keys to factories during a setup
// phase, then resolves them (possibly from many goroutines) afterwards.
//
// Lifetimes:
//   - Bind      → transient: the factory runs on every Make
//   - Singleton → the factory runs once; the result is cached
//   - Instance  → a pre-built value, cached immediately
//
// Registration is expected to finish before concurrent resolution begins
// (single writer, then many readers). The container tolerates concurrent
// Make calls at steady state; it does not try to make mid-resolution
// re-binding meaningful.
type Container struct {
	mu sync.RWMutex

	// abstract → binding
	bindings map[string]*binding

	// abstract → cached singleton instance
	instances map[string]any

	// alias → canonical abstract key
	aliases map[string]string
}

// New creates an empty container. The container binds itself under the
// "container" key so factories can hand it to collaborators.
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// Bind registers a transient factory: Make runs it on every resolution.
func (c *Container) Bind(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register(abstract, factory, false)
}

// Singleton registers a factory whose result is cached after the first
// resolution.
func (c *Container) Singleton(abstract string, factory Factory) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.register(abstract, factory, true)
}

// Instance registers a pre-built value as a singleton.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

// register must be called with mu held. Re-binding a key drops any cached
// singleton so the next Make uses the new factory.
func (c *Container) register(abstract string, factory Factory, singleton bool) {
	key := c.canonical(abstract)
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory, singleton: singleton}
}

// Alias registers an alternative name for an abstract.
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if abstract == alias {
		panic(fmt.Sprintf("container: [%s] is aliased to itself", abstract))
	}
	c.aliases[alias] = c.canonical(abstract)
}

// Make resolves an abstract key. It panics if nothing is bound under the
// key; use Bound to probe first when absence is an expected case.
func (c *Container) Make(abstract string) any {
	key := c.canonical(abstract)

	c.mu.RLock()
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		panic(fmt.Sprintf("container: no binding registered for [%s]", abstract))
	}

	instance := b.factory(c)

	if b.singleton {
		c.mu.Lock()
		// Another goroutine may have cached its result first; keep the
		// earlier one so all callers share a single instance.
		if prev, ok := c.instances[key]; ok {
			instance = prev
		} else {
			c.instances[key] = instance
		}
		c.mu.Unlock()
	}
	return instance
}

// Bound reports whether an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasBinding := c.bindings[key]
	_, hasInstance := c.instances[key]
	return hasBinding || hasInstance
}

// Resolved reports whether a singleton instance has been materialized for
// the abstract.
func (c *Container) Resolved(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.instances[c.canonical(abstract)]
	return ok
}

// Forget removes the binding and any cached instance for an abstract.
func (c *Container) Forget(abstract string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	delete(c.instances, key)
}

// Flush resets the container to its freshly constructed state.
func (c *Container) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bindings = make(map[string]*binding)
	c.instances = make(map[string]any)
	c.aliases = make(map[string]string)
	c.instances["container"] = c
}

// Bindings returns the registered abstract keys, for diagnostics.
func (c *Container) Bindings() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, 0, len(c.bindings)+len(c.instances))
	for k := range c.bindings {
		out = append(out, k)
	}
	for k := range c.instances {
		if _, already := c.bindings[k]; !already {
			out = append(out, k)
		}
	}
	return out
}

// canonical resolves an alias to its canonical key. Aliases are written
// only during the registration phase, so steady-state reads are safe
// without the lock.
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// TypeKey returns the package-qualified name of v's type, a stable abstract
// key for type-addressed bindings.
//
//	key := container.TypeKey((*AudioClient)(nil)) // "mypkg.AudioClient"
func TypeKey(v any) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return ""
	}
	return t.PkgPath() + "." + t.Name()
}

// Resolve resolves an abstract and type-asserts the result. It panics when
// the key is unbound or the bound value is not a T.
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}

// TryResolve is like Resolve but reports assertion failure instead of
// panicking. It still panics on an unbound key, matching Make.
func TryResolve[T any](c *Container, abstract string) (T, bool) {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	return typed, ok
}
