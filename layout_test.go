package vellum

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {

	layout := DefaultLayout()

	assert.Contains(t, layout.Fields, "heading")
	assert.Contains(t, layout.Fields, "defined_term")
	assert.Contains(t, layout.Fields, layout.ChipField)
	assert.NotEmpty(t, layout.Columns)
}

func TestLoadLayout(t *testing.T) {

	// missing file falls back to defaults
	layout, err := LoadLayout(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout().Fields, layout.Fields)

	// file overrides the vocabulary
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	data := []byte("fields:\n  - zork\n  - grue\nchip_field: zork\n")
	require.NoError(t, os.WriteFile(path, data, 0644))

	layout, err = LoadLayout(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"zork", "grue"}, layout.Fields)
	assert.Equal(t, "zork", layout.ChipField)
}
