package detect

import (
	"testing"
)

func TestPII_PAN(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"uppercase pan", "My PAN is ABCDE1234F", true},
		{"pan embedded in text", "card ABCDE1234F expired", true},
		{"lowercase pan not flagged", "my pan is abcde1234f", false},
		{"mixed case not flagged", "Abcde1234F", false},
		{"too few letters", "ABCD1234F", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			has, kinds := PII(tt.query)
			got := has && containsKind(kinds, KindPAN)
			if got != tt.want {
				t.Errorf("PII(%q) PAN = %v, want %v (kinds: %v)", tt.query, got, tt.want, kinds)
			}
		})
	}
}

func TestPII_Aadhaar(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"grouped", "my aadhaar is 1234 5678 9012", true},
		{"unbroken", "aadhaar 123456789012", true},
		{"too short", "1234 5678", false},
		{"letters between groups", "1234 abcd 9012", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			has, kinds := PII(tt.query)
			got := has && containsKind(kinds, KindAadhaar)
			if got != tt.want {
				t.Errorf("PII(%q) Aadhaar = %v, want %v (kinds: %v)", tt.query, got, tt.want, kinds)
			}
		})
	}
}

func TestPII_AccountNumber(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"9 digits", "account 123456789", true},
		{"18 digits", "account 123456789012345678", true},
		{"8 digits too short", "account 12345678", false},
		{"19 digits too long", "account 1234567890123456789", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			has, kinds := PII(tt.query)
			got := has && containsKind(kinds, KindAccount)
			if got != tt.want {
				t.Errorf("PII(%q) Account = %v, want %v (kinds: %v)", tt.query, got, tt.want, kinds)
			}
		})
	}
}

// A 12-digit run satisfies both the Aadhaar and the account-number pattern;
// both kinds are reported.
func TestPII_AadhaarAndAccountCoOccur(t *testing.T) {
	has, kinds := PII("my number is 123456789012")
	if !has {
		t.Fatal("expected PII to be detected")
	}
	if !containsKind(kinds, KindAadhaar) || !containsKind(kinds, KindAccount) {
		t.Errorf("expected both Aadhaar and Account Number, got %v", kinds)
	}
}

func TestPII_Clean(t *testing.T) {
	queries := []string{
		"",
		"What is the expense ratio of SBI Bluechip Fund?",
		"lock-in period for ELSS",
	}
	for _, q := range queries {
		if has, kinds := PII(q); has {
			t.Errorf("PII(%q) = true (%v), want false", q, kinds)
		}
	}
}

func containsKind(kinds []PIIKind, k PIIKind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
