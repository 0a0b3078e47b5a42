// Package product defines the financial product record exchanged with the
// product API, its calendar date type, and the field accessors used by the
// listing pipeline.
package product
