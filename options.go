package vkfactory

import (
	"sync"

	"github.com/arcline/vkfactory/container"
	"github.com/arcline/vkfactory/vkapi"
)

// ConfigureFunc mutates a freshly constructed client.
type ConfigureFunc func(*vkapi.Client) error

// ConfigureContextFunc mutates a freshly constructed client with access to
// the resolution context, so configuration can depend on other registered
// services.
type ConfigureContextFunc func(*container.Container, *vkapi.Client) error

// ClientOptions is the accumulated configuration for one logical client
// name: the ordered action list plus a back-reference to the registration
// collection the actions were registered against.
type ClientOptions struct {
	// Name is the logical client name this record configures.
	Name string

	actions    []ConfigureContextFunc
	collection *container.Container
}

// Collection returns the registration collection recorded for this name.
func (o *ClientOptions) Collection() *container.Container { return o.collection }

// Len returns the number of accumulated actions.
func (o *ClientOptions) Len() int { return len(o.actions) }

// OptionsStore accumulates configuration actions per logical client name.
// Records are created on the first Configure call for a name and live for
// the store's lifetime; actions replay at client-construction time in exact
// registration order.
type OptionsStore struct {
	collection *container.Container

	mu      sync.Mutex
	records map[string]*ClientOptions
}

// NewOptionsStore creates a store whose records reference collection.
func NewOptionsStore(collection *container.Container) *OptionsStore {
	return &OptionsStore{
		collection: collection,
		records:    make(map[string]*ClientOptions),
	}
}

// Configure appends a client-only action to the record for name, creating
// the record if absent.
func (s *OptionsStore) Configure(name string, fn ConfigureFunc) error {
	if fn == nil {
		return ErrNilAction
	}
	return s.ConfigureContext(name, func(_ *container.Container, c *vkapi.Client) error {
		return fn(c)
	})
}

// ConfigureContext appends a context-aware action to the record for name,
// creating the record if absent. The store's registration collection is
// (re)stamped onto the record so downstream wiring registers against the
// same collection, never a copy.
func (s *OptionsStore) ConfigureContext(name string, fn ConfigureContextFunc) error {
	if name == "" {
		return ErrEmptyName
	}
	if fn == nil {
		return ErrNilAction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		rec = &ClientOptions{Name: name}
		s.records[name] = rec
	}
	rec.actions = append(rec.actions, fn)
	rec.collection = s.collection
	return nil
}

// snapshot returns a copy of the record for name. Unconfigured names get a
// default record with an empty action list.
func (s *OptionsStore) snapshot(name string) ClientOptions {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[name]
	if !ok {
		return ClientOptions{Name: name, collection: s.collection}
	}
	out := ClientOptions{Name: name, collection: rec.collection}
	out.actions = append(out.actions, rec.actions...)
	return out
}
