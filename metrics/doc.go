// Package metrics instruments the client-factory layer with prometheus
// counters.
//
// The factory records through the Recorder interface. Hosts that want
// scrape-able metrics bind a *Collector; everything else gets the zero-cost
// Nop recorder. The Collector owns a private prometheus registry so
// embedding it never collides with a host's default registry.
package metrics
