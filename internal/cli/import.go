package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dkarpov/clip2org/internal/clippings"
	"github.com/dkarpov/clip2org/internal/config"
	"github.com/dkarpov/clip2org/internal/database"
	"github.com/dkarpov/clip2org/internal/entities"
	"github.com/dkarpov/clip2org/internal/outline"
)

// ImportCommand parses a clippings file and stores the entries in the
// local library database, grouped by book.
type ImportCommand struct {
	ClippingsPath string
	DatabasePath  string
	Verbose       bool
	DryRun        bool
}

func NewImportCommand(cfg *config.Config) *ImportCommand {
	return &ImportCommand{
		ClippingsPath: cfg.Clippings.FilePath,
		DatabasePath:  cfg.Database.Path,
	}
}

func (cmd *ImportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)

	fs.StringVar(&cmd.ClippingsPath, "file", cmd.ClippingsPath, "Path to Kindle 'My Clippings.txt' file")
	fs.StringVar(&cmd.DatabasePath, "db", cmd.DatabasePath, "Path to the local library database")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable verbose logging")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Show what would be imported without making changes")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s import [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Import clippings into the local library database. The outline can\n")
		fmt.Fprintf(os.Stderr, "later be rebuilt from the library with the 'export' command.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ClippingsPath == "" {
		return fmt.Errorf("no clippings file configured: set CLIPPINGS_FILE_PATH or pass -file")
	}

	return nil
}

func (cmd *ImportCommand) Run() error {
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

	fmt.Printf("Found %d titles with %d total entries\n", collection.Len(), collection.EntryCount())

	if cmd.Verbose {
		for i, title := range collection.Titles() {
			fmt.Printf("%d. %s (%d entries)\n", i+1, title, len(collection.Entries(title)))
		}
	}

	if cmd.DryRun {
		fmt.Println("Dry run complete. Use without -dry-run to import.")
		return nil
	}

	absDBPath, err := filepath.Abs(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path for database: %w", err)
	}
	cmd.DatabasePath = absDBPath

	db, err := database.NewDatabase(cmd.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	var importedBooks, importedClippings int
	for _, title := range collection.Titles() {
		book := toBook(title, collection.Entries(title))
		if err := db.SaveBook(book); err != nil {
			return fmt.Errorf("failed to save %q: %w", title, err)
		}
		importedBooks++
		importedClippings += len(book.Clippings)

		if cmd.Verbose {
			fmt.Printf("  -> saved %q (%d entries)\n", title, len(book.Clippings))
		}
	}

	fmt.Printf("Imported %d books with %d clippings into %s\n",
		importedBooks, importedClippings, cmd.DatabasePath)

	return nil
}

func toBook(title string, entries []clippings.Entry) *entities.Book {
	book := &entities.Book{Title: title}
	for _, entry := range entries {
		book.Clippings = append(book.Clippings, entities.Clipping{
			IsHighlight: entry.IsHighlight,
			Header:      entry.Header,
			Page:        entry.Page,
			Location:    entry.Location,
			AddedOn:     entry.Date,
			Content:     entry.Content,
		})
	}
	return book
}
