// Package kb loads the FAQ knowledge base from an external source once at
// startup. Key order in the source document is preserved; the matcher's
// tie-breaking depends on it.
package kb

import (
	"bytes"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"github.com/fundwise/faqd/internal/domain"
	"github.com/fundwise/faqd/internal/domain/faq"
)

// entryDTO mirrors one knowledge-base record on the wire.
type entryDTO struct {
	QuestionVariants []string `json:"question_variants"`
	Answer           string   `json:"answer"`
	Source           string   `json:"source"`
	LastUpdated      string   `json:"last_updated"`
	SchemeName       string   `json:"scheme_name"`
	Category         string   `json:"category"`
}

// Decode parses a knowledge-base JSON document into strongly-typed entries,
// preserving key order. A plain map would lose it, so the top-level object
// is walked token by token. Entries failing validation are logged and
// skipped; a document that is not a JSON object fails as a whole.
func Decode(data []byte, logger *zap.Logger) (*faq.KnowledgeBase, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSource, err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, fmt.Errorf("%w: top-level value must be an object", domain.ErrMalformedSource)
	}

	var entries []faq.Entry
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSource, err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: unexpected token %v", domain.ErrMalformedSource, keyTok)
		}

		var dto entryDTO
		if err := dec.Decode(&dto); err != nil {
			return nil, fmt.Errorf("%w: entry %q: %v", domain.ErrMalformedSource, key, err)
		}

		entry, err := faq.New(
			key, dto.QuestionVariants, dto.Answer, dto.Source,
			dto.LastUpdated, dto.SchemeName, dto.Category,
		)
		if err != nil {
			logger.Warn("skipping invalid knowledge base entry",
				zap.String("q_key", key),
				zap.Error(err),
			)
			continue
		}
		entries = append(entries, entry)
	}

	kb, err := faq.NewKnowledgeBase(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedSource, err)
	}
	return kb, nil
}
