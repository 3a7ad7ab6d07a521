package faq

import "fmt"

// KnowledgeBase is an immutable, ordered collection of FAQ entries.
// Iteration order is insertion order from the source document; the matcher
// relies on it for stable tie-breaking. A reload is a fresh construction,
// never an in-place mutation.
type KnowledgeBase struct {
	entries []Entry
	index   map[string]int
}

// NewKnowledgeBase builds a knowledge base from entries, preserving order.
// Duplicate keys are rejected.
func NewKnowledgeBase(entries []Entry) (*KnowledgeBase, error) {
	kb := &KnowledgeBase{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		if _, ok := kb.index[e.Key()]; ok {
			return nil, fmt.Errorf("duplicate entry key %q", e.Key())
		}
		kb.index[e.Key()] = len(kb.entries)
		kb.entries = append(kb.entries, e)
	}
	return kb, nil
}

// Empty returns a knowledge base with no entries.
// Every query against it resolves to no match.
func Empty() *KnowledgeBase {
	return &KnowledgeBase{index: map[string]int{}}
}

// Len returns the number of entries.
func (kb *KnowledgeBase) Len() int { return len(kb.entries) }

// Get returns the entry for key.
func (kb *KnowledgeBase) Get(key string) (Entry, bool) {
	i, ok := kb.index[key]
	if !ok {
		return Entry{}, false
	}
	return kb.entries[i], true
}

// Entries returns all entries in insertion order.
// The returned slice must not be mutated.
func (kb *KnowledgeBase) Entries() []Entry { return kb.entries }
