// Package domain contains the core business entities and rules for the
// Recall indexing engine. It has no dependencies on adapters or
// infrastructure.
package domain
