package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/dkarpov/clip2org/internal/clippings"
	"github.com/dkarpov/clip2org/internal/config"
	"github.com/dkarpov/clip2org/internal/exporters"
	"github.com/dkarpov/clip2org/internal/outline"
)

// ConvertCommand turns a Kindle clippings file into an org outline,
// printed to stdout or written into an output directory.
type ConvertCommand struct {
	ClippingsPath   string
	OutputDir       string
	FileName        string
	IncludeDate     bool
	IncludePDFLinks bool
	PDFFolder       string
	Verbose         bool
}

// NewConvertCommand seeds flag defaults from the environment config, so
// the zero-argument invocation converts the configured file.
func NewConvertCommand(cfg *config.Config) *ConvertCommand {
	return &ConvertCommand{
		ClippingsPath:   cfg.Clippings.FilePath,
		OutputDir:       cfg.Outline.OutputDir,
		FileName:        cfg.Outline.FileName,
		IncludeDate:     cfg.Outline.IncludeDate,
		IncludePDFLinks: cfg.Outline.IncludePDFLinks,
		PDFFolder:       cfg.Outline.PDFFolder,
	}
}

func (cmd *ConvertCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)

	fs.StringVar(&cmd.ClippingsPath, "file", cmd.ClippingsPath, "Path to Kindle 'My Clippings.txt' file")
	fs.StringVar(&cmd.OutputDir, "output", cmd.OutputDir, "Directory for the generated org file (prints to stdout when empty)")
	fs.StringVar(&cmd.FileName, "name", cmd.FileName, "Name of the generated org file")
	fs.BoolVar(&cmd.IncludeDate, "dates", cmd.IncludeDate, "Emit a :DATE: property drawer for entries that carry one")
	fs.BoolVar(&cmd.IncludePDFLinks, "pdf-links", cmd.IncludePDFLinks, "Emit pdfview links for page-bearing entries")
	fs.StringVar(&cmd.PDFFolder, "pdf-folder", cmd.PDFFolder, "Base folder used when building pdfview links")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s convert [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Convert a Kindle 'My Clippings.txt' file into an org outline,\n")
		fmt.Fprintf(os.Stderr, "grouped by book title.\n\n")
		fmt.Fprintf(os.Stderr, "The clippings file is typically found at:\n")
		fmt.Fprintf(os.Stderr, "  /Volumes/Kindle/documents/My Clippings.txt\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  # Print the outline for a connected Kindle:\n")
		fmt.Fprintf(os.Stderr, "  %s convert -file \"/Volumes/Kindle/documents/My Clippings.txt\"\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  # Write the outline into an org directory with pdf links:\n")
		fmt.Fprintf(os.Stderr, "  %s convert -file \"My Clippings.txt\" -output ~/org -pdf-links -pdf-folder ~/books/\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ClippingsPath == "" {
		return fmt.Errorf("no clippings file configured: set CLIPPINGS_FILE_PATH or pass -file")
	}

	return nil
}

func (cmd *ConvertCommand) Run() error {
	file, err := clippings.Open(cmd.ClippingsPath)
	if err != nil {
		return err
	}
	defer file.Close()

	entries, err := clippings.NewParser().Parse(file)
	if err != nil {
		return fmt.Errorf("failed to parse clippings: %w", err)
	}

	collection := outline.Group(entries)

	if cmd.Verbose {
		fmt.Fprintf(os.Stderr, "Parsed %d entries across %d titles\n", len(entries), collection.Len())
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
