// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by inbound
// adapters (HTML pages, JSON API, CLI). The store port is implemented by the
// in-memory project store and consumed by the application layer and the
// render components that subscribe to it.
package ports
