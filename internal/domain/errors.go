package domain

import "errors"

var (
	// ErrInvalidEntry signals a knowledge-base entry that fails validation.
	ErrInvalidEntry = errors.New("invalid faq entry")
	// ErrSourceUnavailable signals that the knowledge-base source could not be read.
	ErrSourceUnavailable = errors.New("knowledge base source unavailable")
	// ErrMalformedSource signals that the knowledge-base source is not valid JSON.
	ErrMalformedSource = errors.New("malformed knowledge base source")
)
