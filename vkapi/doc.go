// Package vkapi defines the raw VK-style API client the factory layer
// names, configures, and caches.
//
// The type is intentionally inert: it is a bag of public, mutable
// configuration fields plus a few helpers. Authentication flows and method
// execution belong to whatever transport the host wires in through
// HTTPClient; the factory machinery in the root package only cares that the
// client is constructible and mutable after construction.
package vkapi
