package exporters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarpov/clip2org/internal/clippings"
	"github.com/dkarpov/clip2org/internal/outline"
)

func TestOrgExporter_Export(t *testing.T) {
	t.Run("writes the rendered outline", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewOrgExporter(dir, "")

		c := outline.Group([]clippings.Entry{
			{Title: "Walden", IsHighlight: true, Page: "12", Content: "quiet desperation"},
			{Title: "Walden", IsHighlight: true, Location: "100", Content: "simplify"},
			{Title: "Fahrenheit 451", IsHighlight: true, Content: "burn"},
		})

		result, err := exporter.Export(c, outline.Options{})
		require.NoError(t, err)

		assert.Equal(t, 2, result.TitlesProcessed)
		assert.Equal(t, 3, result.EntriesProcessed)
		assert.Equal(t, filepath.Join(dir, "clippings.org"), result.OutputPath)

		data, err := os.ReadFile(result.OutputPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "* Walden\n")
		assert.Contains(t, string(data), "** Page 12 \n")
		assert.Contains(t, string(data), "* Fahrenheit 451\n")
	})

	t.Run("creates the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		exporter := NewOrgExporter(dir, "notes.org")

		c := outline.Group([]clippings.Entry{
			{Title: "Book", IsHighlight: true, Content: "text"},
		})

		result, err := exporter.Export(c, outline.Options{})
		require.NoError(t, err)
		assert.FileExists(t, result.OutputPath)
	})

	t.Run("replaces a previous export", func(t *testing.T) {
		dir := t.TempDir()
		exporter := NewOrgExporter(dir, "")

		first := outline.Group([]clippings.Entry{{Title: "Old", IsHighlight: true, Content: "old"}})
		_, err := exporter.Export(first, outline.Options{})
		require.NoError(t, err)

		second := outline.Group([]clippings.Entry{{Title: "New", IsHighlight: true, Content: "new"}})
		result, err := exporter.Export(second, outline.Options{})
		require.NoError(t, err)

		data, err := os.ReadFile(result.OutputPath)
		require.NoError(t, err)
		assert.NotContains(t, string(data), "Old")
		assert.Contains(t, string(data), "* New\n")
	})
}
