package exporters

import "github.com/dkarpov/clip2org/internal/outline"

// ExportResult summarizes a single outline export.
type ExportResult struct {
	TitlesProcessed  int
	EntriesProcessed int
	OutputPath       string
}

// OutlineExporter writes a rendered outline document somewhere.
type OutlineExporter interface {
	Export(c *outline.Collection, opts outline.Options) (ExportResult, error)
}
