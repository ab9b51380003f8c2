// Package mock provides test doubles for the ai package.
//
// MockEmbedder produces deterministic unit-length vectors so tests can
// exercise the full retrieval pipeline without an embedding service.
// Behavior can be overridden per test via the exported function fields.
package mock
