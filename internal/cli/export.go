package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/dkarpov/clip2org/internal/clippings"
	"github.com/dkarpov/clip2org/internal/config"
	"github.com/dkarpov/clip2org/internal/database"
	"github.com/dkarpov/clip2org/internal/exporters"
	"github.com/dkarpov/clip2org/internal/outline"
)

// ExportCommand rebuilds the org outline from the local library
// database instead of a clippings file.
type ExportCommand struct {
	DatabasePath    string
	OutputDir       string
	FileName        string
	IncludeDate     bool
	IncludePDFLinks bool
	PDFFolder       string
}

func NewExportCommand(cfg *config.Config) *ExportCommand {
	return &ExportCommand{
		DatabasePath:    cfg.Database.Path,
		OutputDir:       cfg.Outline.OutputDir,
		FileName:        cfg.Outline.FileName,
		IncludeDate:     cfg.Outline.IncludeDate,
		IncludePDFLinks: cfg.Outline.IncludePDFLinks,
		PDFFolder:       cfg.Outline.PDFFolder,
	}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the local library database")
	fs.StringVar(&cmd.OutputDir, "output", cmd.OutputDir, "Directory for the generated org file (prints to stdout when empty)")
	fs.StringVar(&cmd.FileName, "name", cmd.FileName, "Name of the generated org file")
	fs.BoolVar(&cmd.IncludeDate, "dates", cmd.IncludeDate, "Emit a :DATE: property drawer for entries that carry one")
	fs.BoolVar(&cmd.IncludePDFLinks, "pdf-links", cmd.IncludePDFLinks, "Emit pdfview links for page-bearing entries")
	fs.StringVar(&cmd.PDFFolder, "pdf-folder", cmd.PDFFolder, "Base folder used when building pdfview links")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Render the org outline from the local library database.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *ExportCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	books, err := db.GetAllBooks()
	if err != nil {
		return err
	}

	collection := outline.NewCollection()
	for _, book := range books {
		for _, clip := range book.Clippings {
			collection.Append(clippings.Entry{
				Title:       book.Title,
				IsHighlight: clip.IsHighlight,
				Header:      clip.Header,
				Page:        clip.Page,
				Location:    clip.Location,
				Date:        clip.AddedOn,
				Content:     clip.Content,
			})
		}
	}

	opts := outline.Options{
		IncludeDate:     cmd.IncludeDate,
		IncludePDFLinks: cmd.IncludePDFLinks,
		PDFFolder:       cmd.PDFFolder,
	}

	if cmd.OutputDir == "" {
		fmt.Print(outline.Render(collection, opts))
		return nil
	}

	exporter := exporters.NewOrgExporter(cmd.OutputDir, cmd.FileName)
	result, err := exporter.Export(collection, opts)
	if err != nil {
		return fmt.Errorf("failed to export outline: %w", err)
	}

	fmt.Printf("Wrote %d titles (%d entries) to %s\n",
		result.TitlesProcessed, result.EntriesProcessed, result.OutputPath)

	return nil
}
