package kb

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/fundwise/faqd/internal/domain"
)

const sampleDoc = `{
  "zeta_q": {
    "question_variants": ["What is an exit load?"],
    "answer": "A charge on early redemption.",
    "source": "https://www.sebi.gov.in/faq.pdf",
    "last_updated": "2025-09-18",
    "scheme_name": "General",
    "category": "General"
  },
  "alpha_q": {
    "question_variants": ["What is the lock-in period for ELSS?", "ELSS lock-in period"],
    "answer": "3 years from the date of each investment.",
    "source": "https://www.amfiindia.com/elss",
    "last_updated": "2025-10-02"
  }
}`

func TestDecode_PreservesDocumentOrder(t *testing.T) {
	kb, err := Decode([]byte(sampleDoc), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if kb.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", kb.Len())
	}

	// "zeta_q" sorts after "alpha_q" but appears first in the document;
	// document order must win.
	entries := kb.Entries()
	if entries[0].Key() != "zeta_q" || entries[1].Key() != "alpha_q" {
		t.Errorf("order = [%s, %s], want [zeta_q, alpha_q]", entries[0].Key(), entries[1].Key())
	}

	alpha, ok := kb.Get("alpha_q")
	if !ok {
		t.Fatal("alpha_q not found")
	}
	if len(alpha.Variants()) != 2 {
		t.Errorf("alpha_q variants = %d, want 2", len(alpha.Variants()))
	}
	if alpha.SchemeName() != "" {
		t.Errorf("alpha_q scheme_name = %q, want empty (optional)", alpha.SchemeName())
	}
}

func TestDecode_SkipsInvalidEntries(t *testing.T) {
	doc := `{
	  "bad": {"question_variants": [], "answer": "x", "source": "https://a", "last_updated": "2025-01-01"},
	  "good": {"question_variants": ["q"], "answer": "x", "source": "https://a", "last_updated": "2025-01-01"}
	}`

	kb, err := Decode([]byte(doc), zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if kb.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", kb.Len())
	}
	if _, ok := kb.Get("bad"); ok {
		t.Error("invalid entry was kept")
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"truncated", `{"a": {`},
		{"top-level array", `[1, 2]`},
		{"top-level string", `"not an object"`},
		{"entry not object", `{"a": 42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.doc), zap.NewNop())
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, domain.ErrMalformedSource) {
				t.Errorf("error = %v, want ErrMalformedSource", err)
			}
		})
	}
}
