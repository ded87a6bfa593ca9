package clippings

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Delimiter is the fixed marker line separating consecutive clippings
// in the raw Kindle export.
const Delimiter = "=========="

// Entry represents a single clipping parsed from My Clippings.txt.
// Page and Location keep the device's numeric-or-range notation as-is
// ("12", "345-346"); Date is the free-form text after "Added on".
type Entry struct {
	Title       string
	IsHighlight bool
	Page        string
	Location    string
	Date        string
	Header      string
	Content     string
}

// Regex patterns for the metadata region of a record
var (
	// Matches the descriptor token "- Highlight on Page 28 |" and
	// captures the text between the dash and the first pipe
	headerPattern = regexp.MustCompile(`- ([^|\r\n]*)\|`)

	// Page and location values are a number or a dash range:
	// "Page 28", "Loc. 428-30"
	pagePattern     = regexp.MustCompile(`Page (\d+(?:-\d+)?)`)
	locationPattern = regexp.MustCompile(`Loc\. (\d+(?:-\d+)?)`)

	// Date is kept as free-form text: "Added on Thursday, March 21, 2013 4:02:10 PM"
	datePattern = regexp.MustCompile(`Added on ([^\r\n]+)`)
)

// Scanner walks the raw clippings text one record at a time.
type Scanner struct {
	text string
	pos  int
}

func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next entry, or (nil, nil) once no further delimiter
// is found ahead of the cursor. Trailing text without a closing
// delimiter is left unconsumed: every well-formed record in the export
// ends with a delimiter line.
func (s *Scanner) Next() (*Entry, error) {
	idx := strings.Index(s.text[s.pos:], Delimiter)
	if idx == -1 {
		return nil, nil
	}

	start := s.pos
	region := s.text[start : start+idx]

	title := strings.TrimSpace(firstLine(s.text[start:]))
	if title == Delimiter {
		return nil, &MalformedRecordError{Offset: start, Reason: "content or quoted text could not be located"}
	}

	entry := &Entry{
		Title:       title,
		IsHighlight: strings.Contains(region, "Highlight"),
	}

	if m := headerPattern.FindStringSubmatch(region); m != nil {
		entry.Header = strings.TrimSpace(m[1])
	}
	if m := pagePattern.FindStringSubmatch(region); m != nil {
		entry.Page = m[1]
	}
	if m := locationPattern.FindStringSubmatch(region); m != nil {
		entry.Location = m[1]
	}
	if m := datePattern.FindStringSubmatch(region); m != nil {
		entry.Date = strings.TrimSpace(m[1])
	}

	entry.Content = parseContent(region)
	if entry.IsHighlight && entry.Content == "" {
		return nil, &MalformedRecordError{Offset: start, Reason: "highlight record has no content"}
	}

	s.advance(start + idx)

	return entry, nil
}

// advance moves the cursor one line past the delimiter found at
// delimiterPos, so the next call starts at the following record's
// title line.
func (s *Scanner) advance(delimiterPos int) {
	s.pos = delimiterPos + len(Delimiter)
	if nl := strings.IndexByte(s.text[s.pos:], '\n'); nl != -1 {
		s.pos += nl + 1
	} else {
		s.pos = len(s.text)
	}
}

// parseContent captures the clipped text of a record region: everything
// after the blank line that closes the metadata block, up to the line
// preceding the delimiter. Multi-line passages are kept whole and
// joined with newlines rather than truncated to the first line.
func parseContent(region string) string {
	lines := strings.Split(region, "\n")

	contentStart := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			contentStart = i + 1
			break
		}
	}
	if contentStart == -1 || contentStart >= len(lines) {
		return ""
	}

	content := lines[contentStart:]
	for i := range content {
		content[i] = strings.TrimRight(content[i], "\r")
	}
	return strings.TrimSpace(strings.Join(content, "\n"))
}

func firstLine(text string) string {
	if nl := strings.IndexByte(text, '\n'); nl != -1 {
		return strings.TrimRight(text[:nl], "\r")
	}
	return text
}

// Parser parses the Kindle My Clippings.txt format.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

// Parse drains a clippings stream into the list of entries it holds,
// in file order. The first malformed record aborts the whole parse.
func (p *Parser) Parse(r io.Reader) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading clippings: %w", err)
	}

	scanner := NewScanner(string(data))

	var entries []Entry
	for {
		entry, err := scanner.Next()
		if err != nil {
			return nil, err
		}
		if entry == nil {
			break
		}
		entries = append(entries, *entry)
	}

	return entries, nil
}
