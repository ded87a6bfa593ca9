package outline

import (
	"fmt"
	"strings"

	"github.com/dkarpov/clip2org/internal/clippings"
	"github.com/dkarpov/clip2org/internal/utils"
)

// Options controls the rendered outline. Each toggle is independent.
type Options struct {
	// IncludeDate emits a :DATE: property drawer for entries that
	// carry a date.
	IncludeDate bool
	// IncludePDFLinks emits a pdfview link line for every page-bearing
	// entry, built from PDFFolder + title + page.
	IncludePDFLinks bool
	PDFFolder       string
}

// Render produces the org outline for a grouped collection: a top-level
// heading per title in collection order, a second-level heading per
// entry in append order. An empty collection renders an empty document.
func Render(c *Collection, opts Options) string {
	var builder strings.Builder

	for _, title := range c.Titles() {
		fmt.Fprintf(&builder, "* %s\n", title)
		for _, entry := range c.Entries(title) {
			renderEntry(&builder, title, entry, opts)
		}
	}

	return builder.String()
}

func renderEntry(builder *strings.Builder, title string, entry clippings.Entry, opts Options) {
	if entry.IsHighlight {
		builder.WriteString("** ")
		if entry.Page != "" {
			fmt.Fprintf(builder, "Page %s ", entry.Page)
		}
		if entry.Location != "" {
			fmt.Fprintf(builder, "Loc. %s ", entry.Location)
		}
		builder.WriteString("\n")

		if opts.IncludeDate && entry.Date != "" {
			fmt.Fprintf(builder, ":PROPERTIES:\n:DATE: %s\n:END:\n", entry.Date)
		}

		fmt.Fprintf(builder, "%s\n", entry.Content)
	} else {
		// Bookmarks have no body beyond the heading line
		fmt.Fprintf(builder, "** %s\n", entry.Content)
	}

	if opts.IncludePDFLinks && entry.Page != "" {
		name := utils.SanitizeFilename(title)
		fmt.Fprintf(builder, "[[pdfview:%s%s.pdf::%s][%s.pdf: Page %s]]\n",
			opts.PDFFolder, name, entry.Page, name, entry.Page)
	}

	builder.WriteString("\n")
}
