package vkfactory

import (
	"errors"
	"reflect"
)

var (
	// ErrEmptyName is returned when an operation is given an empty logical
	// client name. Use DefaultClientName for the single-client case.
	ErrEmptyName = errors.New("vkfactory: empty client name")

	// ErrNilAction is returned when a nil configuration action is registered.
	ErrNilAction = errors.New("vkfactory: nil configuration action")

	// ErrNilClient is returned when a nil raw client is passed to the
	// typed-client factory.
	ErrNilClient = errors.New("vkfactory: nil raw client")

	// ErrNilCollection is returned when a nil registration collection is
	// passed to a registration entry point.
	ErrNilCollection = errors.New("vkfactory: nil registration collection")

	// ErrNilFactory is returned when an operation is invoked on a nil
	// factory.
	ErrNilFactory = errors.New("vkfactory: nil factory")

	// ErrNilBuilder is returned when a registration helper is given a nil
	// builder.
	ErrNilBuilder = errors.New("vkfactory: nil builder")

	// ErrNilConstructor is returned when a typed-client registration carries
	// no constructor, factory, or context factory.
	ErrNilConstructor = errors.New("vkfactory: nil typed-client constructor")
)

// ActivationError reports that a typed-client type was requested before any
// constructor was registered for it. It surfaces on first use of the type,
// not at registration time.
type ActivationError struct {
	// Target is the adapter type that could not be activated.
	Target reflect.Type
}

// Error implements the error interface.
func (e *ActivationError) Error() string {
	// Example: vkfactory: no typed-client constructor registered for mypkg.AudioClient
	return "vkfactory: no typed-client constructor registered for " + e.Target.String()
}
