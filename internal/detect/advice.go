package detect

import "strings"

// adviceTriggers are matched as plain substrings of the lowercased query.
// No word boundaries: "buyer" contains "buy" and triggers a refusal. That
// over-matching is accepted behavior.
var adviceTriggers = []string{
	"buy", "sell", "should i", "recommend", "recommendation", "advice",
	"suggest", "suggestion", "portfolio", "invest in", "worth investing",
	"good investment", "bad investment", "should invest", "must invest",
}

// AdviceRequest reports whether the query asks for investment advice,
// a recommendation, or portfolio guidance.
func AdviceRequest(query string) bool {
	q := strings.ToLower(query)
	for _, trigger := range adviceTriggers {
		if strings.Contains(q, trigger) {
			return true
		}
	}
	return false
}
