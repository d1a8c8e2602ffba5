// Package extractors provides implementations of the Extractor interface
// for various file formats. Each extractor knows how to pull text content
// out of files with specific extensions.
//
// Extractors are registered with the Registry at startup.
package extractors
