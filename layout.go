package vellum

import (
	nt "vellum/entity"
	"vellum/util"
)

// Layout configures the console: the recognized field vocabulary for the
// highlighter, the field the chip control scopes to, and the result table.
//
// The vocabulary duplicates the backend's field list; nothing here detects
// drift, and a stale entry costs only a miscolored prefix since the backend
// stays authoritative for what is actually a field.
type Layout struct {
	Fields    []string    `yaml:"fields"`
	ChipField string      `yaml:"chip_field"`
	Data      string      `yaml:"data,omitempty"`
	Columns   []nt.Column `yaml:"columns"`
}

// DefaultLayout returns the compiled-in configuration, matching the
// backend vocabulary as of this writing.
func DefaultLayout() *Layout {
	return &Layout{
		Fields: []string{
			"heading", "clause", "section", "article", "defined_term",
			"template", "vintage", "market", "doc_type", "admin_agent",
			"facility_size_mm",
		},
		ChipField: "heading",
		Columns: []nt.Column{
			{Field: "heading", Width: 40},
			{Field: "doc_type", Width: 12},
			{Field: "template", Width: 16},
			{Field: "vintage", Width: 8},
		},
	}
}

// LoadLayout reads layout from a yaml file, falling back to the defaults
// when the file is absent.
func LoadLayout(path string) (layout *Layout, err error) {

	layout = DefaultLayout()

	if !util.Exists(path) {
		return
	}

	err = util.LoadConfig(layout, path)
	return
}
