package outline

import "github.com/dkarpov/clip2org/internal/clippings"

// Collection groups parsed entries by source title. Titles keep their
// first-seen order and entries keep parse order within a title; the
// map index keeps membership checks O(1) on large clippings files.
type Collection struct {
	order  []string
	groups map[string][]clippings.Entry
}

func NewCollection() *Collection {
	return &Collection{groups: make(map[string][]clippings.Entry)}
}

// Append records an entry under its title, creating a new slot at the
// end of the collection the first time a title is seen. There is no
// delete; the collection is rebuilt from scratch on every run.
func (c *Collection) Append(entry clippings.Entry) {
	if _, ok := c.groups[entry.Title]; !ok {
		c.order = append(c.order, entry.Title)
	}
	c.groups[entry.Title] = append(c.groups[entry.Title], entry)
}

// Titles returns the distinct titles in first-occurrence order.
func (c *Collection) Titles() []string {
	return c.order
}

// Entries returns the entries recorded under title, in append order.
func (c *Collection) Entries(title string) []clippings.Entry {
	return c.groups[title]
}

// Len returns the number of distinct titles.
func (c *Collection) Len() int {
	return len(c.order)
}

// EntryCount returns the total number of entries across all titles.
func (c *Collection) EntryCount() int {
	total := 0
	for _, entries := range c.groups {
		total += len(entries)
	}
	return total
}

// Group builds a collection from entries in a single pass.
func Group(entries []clippings.Entry) *Collection {
	c := NewCollection()
	for _, entry := range entries {
		c.Append(entry)
	}
	return c
}
