// Package services implements the core business logic of the Recall
// engine: the ingestion pipeline, similarity search, and the directory
// watcher. Services depend only on ports, never on concrete adapters.
package services
