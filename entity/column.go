package entity

// Column describes one result-table column, configured in vocab.yaml.
type Column struct {
	Field  string `yaml:"field"`
	Width  int    `yaml:"width"`
	Hidden bool   `yaml:"hidden,omitempty"`
}

// Field names a metadata field present in the loaded corpus.
type Field struct {
	Name string
	Type string
}
