// Package kernel contains the shared value objects of the domain model.
//
// It provides:
//   - ID: an opaque, immutable identifier for orders, users, and documents
//   - Timestamp: a point in time carried as epoch milliseconds on the wire
//   - Document: the string-keyed field map exchanged with the document store
//
// Identifiers in this system are assigned by the backing store and carry no
// internal structure, so ID wraps a plain non-empty string rather than a UUID.
// All value objects are immutable and safe for concurrent use.
package kernel
