package clippings

import (
	"errors"
	"strings"
	"testing"
)

func TestParser_Parse_BasicHighlight(t *testing.T) {
	input := `The Big Short: Inside the Doomsday Machine (Michael Lewis)
- Highlight on Page 28 | Loc. 428-30 | Added on Thursday, March 21, 2013 4:02:10 PM

The CDO was, in effect, a credit laundering service
==========
`

	parser := NewParser()
	entries, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Title != "The Big Short: Inside the Doomsday Machine (Michael Lewis)" {
		t.Errorf("unexpected title: %s", entry.Title)
	}
	if !entry.IsHighlight {
		t.Errorf("expected a highlight entry")
	}
	if entry.Header != "Highlight on Page 28" {
		t.Errorf("unexpected header: %q", entry.Header)
	}
	if entry.Page != "28" {
		t.Errorf("expected page 28, got %q", entry.Page)
	}
	if entry.Location != "428-30" {
		t.Errorf("expected location 428-30, got %q", entry.Location)
	}
	if entry.Date != "Thursday, March 21, 2013 4:02:10 PM" {
		t.Errorf("unexpected date: %q", entry.Date)
	}
	if entry.Content != "The CDO was, in effect, a credit laundering service" {
		t.Errorf("unexpected content: %q", entry.Content)
	}
}

func TestParser_Parse_LocationOnlyHighlight(t *testing.T) {
	input := `Fahrenheit 451 (Ray Bradbury)
- Highlight Loc. 784-85 | Added on Saturday, March 26, 2016 6:37:26 PM

Who knows who might be the target of the well-read man?
==========
`

	parser := NewParser()
	entries, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.Page != "" {
		t.Errorf("expected no page, got %q", entry.Page)
	}
	if entry.Location != "784-85" {
		t.Errorf("expected location 784-85, got %q", entry.Location)
	}
}

func TestParser_Parse_Bookmark(t *testing.T) {
	input := `Fahrenheit 451 (Ray Bradbury)
- Bookmark Loc. 346 | Added on Saturday, March 26, 2016 3:46:21 PM


==========
`

	parser := NewParser()
	entries, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Bookmarks parse into entries with empty content
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	entry := entries[0]
	if entry.IsHighlight {
		t.Errorf("expected a bookmark entry")
	}
	if entry.Content != "" {
		t.Errorf("expected empty content, got %q", entry.Content)
	}
	if entry.Location != "346" {
		t.Errorf("expected location 346, got %q", entry.Location)
	}
}

func TestParser_Parse_MissingDateLine(t *testing.T) {
	input := `Some Report
- Highlight on Page 7 |

quoted text without a date
==========
`

	parser := NewParser()
	entries, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Date != "" {
		t.Errorf("expected no date, got %q", entries[0].Date)
	}
	if entries[0].Content != "quoted text without a date" {
		t.Errorf("unexpected content: %q", entries[0].Content)
	}
}

func TestParser_Parse_MultilineContent(t *testing.T) {
	input := `Walden (Henry David Thoreau)
- Highlight Loc. 100-102 | Added on Monday, March 18, 2013 9:00:00 AM

The mass of men lead lives of quiet desperation.
What is called resignation is confirmed desperation.
==========
`

	parser := NewParser()
	entries, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	want := "The mass of men lead lives of quiet desperation.\nWhat is called resignation is confirmed desperation."
	if entries[0].Content != want {
		t.Errorf("unexpected content: %q", entries[0].Content)
	}
}

func TestParser_Parse_MultipleTitlesInterleaved(t *testing.T) {
	input := `Book One
- Highlight Loc. 1 | Added on Monday, March 18, 2013 9:00:00 AM

first
==========
Book Two
- Highlight Loc. 2 | Added on Monday, March 18, 2013 9:01:00 AM

second
==========
Book One
- Highlight Loc. 3 | Added on Monday, March 18, 2013 9:02:00 AM

third
==========
`

	parser := NewParser()
	entries, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Title != "Book One" || entries[1].Title != "Book Two" || entries[2].Title != "Book One" {
		t.Errorf("entries out of order: %q, %q, %q", entries[0].Title, entries[1].Title, entries[2].Title)
	}
}

func TestParser_Parse_EmptyInput(t *testing.T) {
	parser := NewParser()
	entries, err := parser.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected 0 entries, got %d", len(entries))
	}
}

func TestParser_Parse_TrailingTextWithoutDelimiter(t *testing.T) {
	input := `Book One
- Highlight Loc. 1 | Added on Monday, March 18, 2013 9:00:00 AM

first
==========
Book Two
- Highlight Loc. 2 |

dangling record without a closing delimiter line`

	parser := NewParser()
	entries, err := parser.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Title != "Book One" {
		t.Errorf("unexpected title: %s", entries[0].Title)
	}
}

func TestParser_Parse_TitleEqualsDelimiter(t *testing.T) {
	input := `Book One
- Highlight Loc. 1 | Added on Monday, March 18, 2013 9:00:00 AM

first
==========
==========
`

	parser := NewParser()
	_, err := parser.Parse(strings.NewReader(input))
	if err == nil {
		t.Fatal("expected a malformed record error")
	}

	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRecordError, got %T: %v", err, err)
	}
}

func TestParser_Parse_HighlightWithoutContent(t *testing.T) {
	input := `Book One
- Highlight Loc. 1 | Added on Monday, March 18, 2013 9:00:00 AM


==========
`

	parser := NewParser()
	_, err := parser.Parse(strings.NewReader(input))

	var malformed *MalformedRecordError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedRecordError, got %T: %v", err, err)
	}
}

func TestScanner_Next_AdvancesPastDelimiter(t *testing.T) {
	input := "A\n- Highlight Loc. 1 |\n\none\n==========\nB\n- Highlight Loc. 2 |\n\ntwo\n==========\n"

	scanner := NewScanner(input)

	first, err := scanner.Next()
	if err != nil || first == nil {
		t.Fatalf("expected first entry, got (%v, %v)", first, err)
	}
	if first.Title != "A" {
		t.Errorf("unexpected first title: %s", first.Title)
	}

	second, err := scanner.Next()
	if err != nil || second == nil {
		t.Fatalf("expected second entry, got (%v, %v)", second, err)
	}
	if second.Title != "B" {
		t.Errorf("unexpected second title: %s", second.Title)
	}

	third, err := scanner.Next()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if third != nil {
		t.Fatalf("expected end of input, got %+v", third)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open("/nonexistent/clippings.txt")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}

	var missing *MissingSourceError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingSourceError, got %T: %v", err, err)
	}
	if missing.Path != "/nonexistent/clippings.txt" {
		t.Errorf("unexpected path: %s", missing.Path)
	}
}
