// Package vellum is a console for field-scoped search over document
// metadata. The scan package highlights raw query text, the chips package
// backs the multi-value filter control, and a Store executes the resulting
// view; the authoritative query grammar lives in the backend, not here.
package vellum

import (
	nt "vellum/entity"
)

// Store specifies a backing document-metadata store.
// It stands in for the backend at the boundary the core hands chips to.
type Store interface {
	// Name returns the name of the data source
	Name() string
	// Load a metadata file
	Load(path string) (err error)
	// SetView applies a chip sequence scoped to a field
	SetView(field string, chipSeq []nt.FilterChip) (err error)
	// GetView returns fields and matching count
	GetView() (fields []nt.Field, count int, err error)
	// GetPage of matching documents
	GetPage(offset, size int) (docs []nt.Doc, err error)
}
