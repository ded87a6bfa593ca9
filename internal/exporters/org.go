package exporters

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkarpov/clip2org/internal/outline"
	"github.com/dkarpov/clip2org/internal/utils"
)

// DefaultOutlineFileName is used when no file name is configured.
const DefaultOutlineFileName = "clippings.org"

// OrgExporter writes the rendered outline as a single org file inside
// the configured output directory. The file is fully replaced on every
// export, never patched incrementally.
type OrgExporter struct {
	OutputDir string
	FileName  string
}

func NewOrgExporter(outputDir, fileName string) *OrgExporter {
	if fileName == "" {
		fileName = DefaultOutlineFileName
	}
	return &OrgExporter{
		OutputDir: outputDir,
		FileName:  fileName,
	}
}

func (e *OrgExporter) ensureDir() error {
	if _, err := os.Stat(e.OutputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(e.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return nil
}

func (e *OrgExporter) Export(c *outline.Collection, opts outline.Options) (ExportResult, error) {
	if err := e.ensureDir(); err != nil {
		return ExportResult{}, err
	}

	document := outline.Render(c, opts)

	outputPath := filepath.Join(e.OutputDir, utils.SanitizeFilename(e.FileName))
	if err := os.WriteFile(outputPath, []byte(document), 0644); err != nil {
		return ExportResult{}, fmt.Errorf("failed to write outline: %w", err)
	}

	return ExportResult{
		TitlesProcessed:  c.Len(),
		EntriesProcessed: c.EntryCount(),
		OutputPath:       outputPath,
	}, nil
}
