package faq

// Status classifies the terminal outcome of a query.
type Status string

const (
	// StatusSuccess indicates a matched FAQ answer.
	StatusSuccess Status = "success"
	// StatusError indicates a rejected query (PII detected).
	StatusError Status = "error"
	// StatusRefusal indicates a declined advice request.
	StatusRefusal Status = "refusal"
	// StatusNoMatch indicates no FAQ scored above the threshold.
	StatusNoMatch Status = "no_match"
)

// ErrorType names the classification behind a non-success outcome.
type ErrorType string

const (
	// ErrorTypePII marks queries containing personal information.
	ErrorTypePII ErrorType = "pii_detected"
	// ErrorTypeAdvice marks queries requesting investment advice.
	ErrorTypeAdvice ErrorType = "advice_request"
	// ErrorTypeNoMatch marks queries with no FAQ above the threshold.
	ErrorTypeNoMatch ErrorType = "no_match"
)

// Result is the terminal response for one query. Exactly one of the four
// statuses is set; answer/source/last_updated carry values only where the
// status defines them (refusal carries the advisory source URL).
type Result struct {
	Status      Status
	ErrorType   ErrorType
	Message     string
	Answer      string
	Source      string
	LastUpdated string
	MatchedKey  string
	Similarity  float64
}
