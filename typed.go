package vkfactory

import (
	"reflect"
	"sync"

	"github.com/arcline/vkfactory/container"
	"github.com/arcline/vkfactory/metrics"
	"github.com/arcline/vkfactory/vkapi"
)

// TypedClientFactory adapts raw clients into host-defined typed clients.
//
// Constructors are registered explicitly per target type; there is no
// constructor discovery (see RegisterTypedClient). On first use of a type
// the factory builds an activator wrapping its constructor; the activator is
// built exactly once per type, concurrently-safe, and reused for every
// subsequent adaptation. Adapter instances themselves are never cached:
// each CreateTypedClient call constructs a fresh one.
type TypedClientFactory struct {
	collection *container.Container
	rec        metrics.Recorder

	mu    sync.Mutex
	ctors map[reflect.Type]any

	// reflect.Type → *activatorEntry
	activators sync.Map
}

// activateFunc adapts a raw client within a resolution context.
type activateFunc func(*container.Container, *vkapi.Client) (any, error)

// activatorEntry is a compute-once cell: once guards the single activator
// build, after which fn/err are immutable.
type activatorEntry struct {
	once sync.Once
	fn   activateFunc
	err  error
}

// NewTypedClientFactory creates a typed-client factory resolving against
// collection. A nil rec disables instrumentation.
func NewTypedClientFactory(collection *container.Container, rec metrics.Recorder) *TypedClientFactory {
	if rec == nil {
		rec = metrics.Nop{}
	}
	return &TypedClientFactory{
		collection: collection,
		rec:        rec,
		ctors:      make(map[reflect.Type]any),
	}
}

// RegisterTypedClient records the constructor used to build T from a raw
// client. Register all typed clients before resolution begins: the
// activator for T latches its constructor (or its absence) on first use.
func RegisterTypedClient[T any](tf *TypedClientFactory, ctor func(*container.Container, *vkapi.Client) (T, error)) error {
	if tf == nil {
		return ErrNilFactory
	}
	if ctor == nil {
		return ErrNilConstructor
	}
	tf.mu.Lock()
	defer tf.mu.Unlock()
	tf.ctors[typeOf[T]()] = ctor
	return nil
}

// CreateTypedClient constructs a fresh T from raw using the cached
// activator for T, building the activator on first use. A type with no
// registered constructor fails with *ActivationError.
func CreateTypedClient[T any](tf *TypedClientFactory, raw *vkapi.Client) (T, error) {
	var zero T
	if tf == nil {
		return zero, ErrNilFactory
	}
	if raw == nil {
		return zero, ErrNilClient
	}

	key := typeOf[T]()
	e := tf.activator(key)
	e.once.Do(func() {
		tf.mu.Lock()
		registered, ok := tf.ctors[key]
		tf.mu.Unlock()
		if !ok {
			e.err = &ActivationError{Target: key}
			return
		}
		ctor := registered.(func(*container.Container, *vkapi.Client) (T, error))
		e.fn = func(col *container.Container, c *vkapi.Client) (any, error) {
			return ctor(col, c)
		}
		tf.rec.ActivatorBuilt(key.String())
	})
	if e.err != nil {
		return zero, e.err
	}

	v, err := e.fn(tf.collection, raw)
	if err != nil {
		return zero, err
	}
	tf.rec.TypedClientConstructed(key.String())
	return v.(T), nil
}

// activator returns the compute-once cell for key, creating it on first
// access. LoadOrStore keeps concurrent first-accesses on a single cell.
func (tf *TypedClientFactory) activator(key reflect.Type) *activatorEntry {
	if v, ok := tf.activators.Load(key); ok {
		return v.(*activatorEntry)
	}
	v, _ := tf.activators.LoadOrStore(key, &activatorEntry{})
	return v.(*activatorEntry)
}

// typeOf returns the reflect.Type of T without constructing one.
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
