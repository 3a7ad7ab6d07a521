package faq

import "testing"

func mustEntry(t *testing.T, key string) Entry {
	t.Helper()
	e, err := New(key, []string{"question for " + key}, "answer", "https://www.sbimf.com/", "2025-01-01", "", "")
	if err != nil {
		t.Fatalf("New(%s): %v", key, err)
	}
	return e
}

func TestNewKnowledgeBase_PreservesOrder(t *testing.T) {
	entries := []Entry{
		mustEntry(t, "zeta"),
		mustEntry(t, "alpha"),
		mustEntry(t, "mid"),
	}

	kb, err := NewKnowledgeBase(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if kb.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", kb.Len())
	}

	want := []string{"zeta", "alpha", "mid"}
	for i, e := range kb.Entries() {
		if e.Key() != want[i] {
			t.Errorf("Entries()[%d].Key() = %q, want %q", i, e.Key(), want[i])
		}
	}
}

func TestNewKnowledgeBase_DuplicateKey(t *testing.T) {
	_, err := NewKnowledgeBase([]Entry{mustEntry(t, "dup"), mustEntry(t, "dup")})
	if err == nil {
		t.Fatal("expected error for duplicate key")
	}
}

func TestKnowledgeBase_Get(t *testing.T) {
	kb, err := NewKnowledgeBase([]Entry{mustEntry(t, "one"), mustEntry(t, "two")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	e, ok := kb.Get("two")
	if !ok || e.Key() != "two" {
		t.Errorf("Get(two) = (%v, %v), want entry two", e.Key(), ok)
	}

	if _, ok := kb.Get("missing"); ok {
		t.Error("Get(missing) = true, want false")
	}
}

func TestEmpty(t *testing.T) {
	kb := Empty()
	if kb.Len() != 0 {
		t.Errorf("Len() = %d, want 0", kb.Len())
	}
	if _, ok := kb.Get("anything"); ok {
		t.Error("Get on empty knowledge base returned an entry")
	}
}
