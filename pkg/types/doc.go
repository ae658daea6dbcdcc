// Package types defines the shared data model for confsweep: the generic
// document node used by the format adapters, the setting record produced by
// extraction, and the duplicate entries produced by detection.
package types
