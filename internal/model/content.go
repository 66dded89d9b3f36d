package model

import (
	"sort"
	"time"
)

// Category tags the provenance of a content item
type Category string

const (
	CategoryPost    Category = "post"    // Submission authored by the account
	CategoryComment Category = "comment" // Reply authored by the account
)

// Well-known content-set section names
const (
	SectionPosts    = "posts"
	SectionComments = "comments"
)

// ContentItem is one post or comment. Items are immutable once acquired.
type ContentItem struct {
	Text          string     `json:"text"`
	SourceLocator string     `json:"source_locator"`       // Permalink; only pattern-matched, never dereferenced
	Category      Category   `json:"category,omitempty"`   // Filled from the section name when empty
	CreatedAt     *time.Time `json:"created_at,omitempty"` // Optional, only when acquisition knows it
}

// ContentSet maps a section name ("posts", "comments", ...) to its items in acquisition order
type ContentSet map[string][]ContentItem

// NewContentSet returns a set with the well-known sections present and empty
func NewContentSet() ContentSet {
	return ContentSet{
		SectionPosts:    []ContentItem{},
		SectionComments: []ContentItem{},
	}
}

// CategoryForSection maps a section name to the category tag of its items
func CategoryForSection(section string) Category {
	if section == SectionPosts {
		return CategoryPost
	}
	return CategoryComment
}

// Sections returns section names in a stable order: posts, comments, then any
// other sections alphabetically.
func (s ContentSet) Sections() []string {
	sections := make([]string, 0, len(s))
	for _, known := range []string{SectionPosts, SectionComments} {
		if _, ok := s[known]; ok {
			sections = append(sections, known)
		}
	}

	var extra []string
	for name := range s {
		if name != SectionPosts && name != SectionComments {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)

	return append(sections, extra...)
}

// Flatten returns every item across sections in Sections() order, preserving
// order within each section. Category is filled from the section when unset.
func (s ContentSet) Flatten() []ContentItem {
	var items []ContentItem
	for _, section := range s.Sections() {
		for _, item := range s[section] {
			if item.Category == "" {
				item.Category = CategoryForSection(section)
			}
			items = append(items, item)
		}
	}
	return items
}

// Texts returns the text bodies of Flatten()
func (s ContentSet) Texts() []string {
	items := s.Flatten()
	texts := make([]string, len(items))
	for i, item := range items {
		texts[i] = item.Text
	}
	return texts
}

// Len returns the total number of items across sections
func (s ContentSet) Len() int {
	total := 0
	for _, items := range s {
		total += len(items)
	}
	return total
}
