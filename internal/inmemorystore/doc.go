// Package inmemorystore provides the ephemeral, ordered result store that
// every calculating node uses as its cache.
//
// # Purpose
//
// A node computes at most one result per key (a matrix id, or a matrix and
// weights pair). The store records results in first-insertion order so that
// the response lists them deterministically, and it reports whether a key
// was already present so repeated requests from several downstream nodes
// are served without recomputation.
//
// # Characteristics
//
//   - **Ephemeral:** created with its node for one request, never persisted
//   - **Ordered:** iteration follows first insertion, re-setting a key keeps
//     its position
//   - **Single-threaded:** a graph is evaluated on one goroutine, so the
//     store carries no locks
package inmemorystore
