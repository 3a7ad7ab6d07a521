// Package faq holds the knowledge-base domain model: entries, the ordered
// knowledge base, and query results.
package faq

import (
	"fmt"
	"strings"

	"github.com/fundwise/faqd/internal/domain"
)

// Entry is a single FAQ record (immutable value object).
// Every entry carries at least one question variant, a factual answer and
// a source URL; scheme name and category are descriptive only and never
// participate in matching.
type Entry struct {
	key         string
	variants    []string
	answer      string
	source      string
	lastUpdated string
	schemeName  string
	category    string
}

// New validates and creates an Entry.
// Key, answer and source must be non-empty; variants must contain at least
// one non-blank phrasing.
func New(key string, variants []string, answer, source, lastUpdated, schemeName, category string) (Entry, error) {
	if key == "" {
		return Entry{}, fmt.Errorf("%w: entry key is required", domain.ErrInvalidEntry)
	}
	if len(variants) == 0 {
		return Entry{}, fmt.Errorf("%w: entry %q has no question variants", domain.ErrInvalidEntry, key)
	}
	for i, v := range variants {
		if strings.TrimSpace(v) == "" {
			return Entry{}, fmt.Errorf("%w: entry %q has blank question variant at index %d", domain.ErrInvalidEntry, key, i)
		}
	}
	if strings.TrimSpace(answer) == "" {
		return Entry{}, fmt.Errorf("%w: entry %q has empty answer", domain.ErrInvalidEntry, key)
	}
	if strings.TrimSpace(source) == "" {
		return Entry{}, fmt.Errorf("%w: entry %q has empty source", domain.ErrInvalidEntry, key)
	}

	copied := make([]string, len(variants))
	copy(copied, variants)

	return Entry{
		key:         key,
		variants:    copied,
		answer:      answer,
		source:      source,
		lastUpdated: lastUpdated,
		schemeName:  schemeName,
		category:    category,
	}, nil
}

// Key returns the unique entry identifier.
func (e Entry) Key() string { return e.key }

// Variants returns the question variants in source order.
// The returned slice must not be mutated.
func (e Entry) Variants() []string { return e.variants }

// Answer returns the factual answer text.
func (e Entry) Answer() string { return e.answer }

// Source returns the source URL backing the answer.
func (e Entry) Source() string { return e.source }

// LastUpdated returns the ISO-8601 date the answer was last verified.
func (e Entry) LastUpdated() string { return e.lastUpdated }

// SchemeName returns the optional scheme name.
func (e Entry) SchemeName() string { return e.schemeName }

// Category returns the optional category label.
func (e Entry) Category() string { return e.category }
