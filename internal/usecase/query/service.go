// Package query orchestrates the classification pipeline: PII detection,
// advice-trigger detection, then fuzzy matching against the knowledge base.
package query

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fundwise/faqd/internal/detect"
	"github.com/fundwise/faqd/internal/domain/faq"
	"github.com/fundwise/faqd/internal/logger"
	"github.com/fundwise/faqd/internal/match"
	"github.com/fundwise/faqd/internal/metrics"
)

// adviceSourceURL points advice requests at the industry body instead of
// an answer.
const adviceSourceURL = "https://www.amfiindia.com/"

const adviceMessage = "This assistant provides factual information only and does not offer " +
	"investment advice, recommendations, or portfolio suggestions. For investment guidance, " +
	"please consult a registered financial advisor or visit AMFI at https://www.amfiindia.com/"

const noMatchMessage = "No matching FAQ found. Please try rephrasing your question " +
	"or check the example questions below."

// Service classifies queries into one of four terminal results. It holds no
// mutable state; concurrent calls are independent.
type Service struct {
	kb        *faq.KnowledgeBase
	threshold float64
}

// New creates a query service. A non-positive threshold falls back to the
// default.
func New(kb *faq.KnowledgeBase, threshold float64) *Service {
	if threshold <= 0 {
		threshold = match.DefaultThreshold
	}
	return &Service{kb: kb, threshold: threshold}
}

// Process runs the pipeline in strict priority order: PII, then advice
// trigger, then matching. A query with both PII and an advice trigger is
// always classified as PII, and an advice request is refused even when it
// would fuzzy-match an FAQ.
func (s *Service) Process(ctx context.Context, query string) faq.Result {
	log := logger.FromContext(ctx)

	if hasPII, kinds := detect.PII(query); hasPII {
		// Only kinds are logged; the query itself stays out of logs here.
		for _, k := range kinds {
			metrics.PIIDetectionsTotal.WithLabelValues(string(k)).Inc()
		}
		metrics.QueriesTotal.WithLabelValues(string(faq.StatusError)).Inc()
		log.Debug("query rejected, personal information detected",
			zap.Int("kind_count", len(kinds)),
		)
		return faq.Result{
			Status:    faq.StatusError,
			ErrorType: faq.ErrorTypePII,
			Message:   piiMessage(kinds),
		}
	}

	if detect.AdviceRequest(query) {
		metrics.QueriesTotal.WithLabelValues(string(faq.StatusRefusal)).Inc()
		log.Debug("query refused, advice request")
		return faq.Result{
			Status:    faq.StatusRefusal,
			ErrorType: faq.ErrorTypeAdvice,
			Message:   adviceMessage,
			Source:    adviceSourceURL,
		}
	}

	m, ok := match.Best(query, s.kb, s.threshold)
	if !ok {
		metrics.QueriesTotal.WithLabelValues(string(faq.StatusNoMatch)).Inc()
		log.Debug("no match above threshold")
		return faq.Result{
			Status:    faq.StatusNoMatch,
			ErrorType: faq.ErrorTypeNoMatch,
			Message:   noMatchMessage,
		}
	}

	metrics.QueriesTotal.WithLabelValues(string(faq.StatusSuccess)).Inc()
	metrics.MatchSimilarity.Observe(m.Score)
	log.Debug("query matched",
		zap.String("q_key", m.Key),
		zap.Float64("similarity", m.Score),
	)

	return faq.Result{
		Status:      faq.StatusSuccess,
		Answer:      m.Entry.Answer(),
		Source:      m.Entry.Source(),
		LastUpdated: m.Entry.LastUpdated(),
		MatchedKey:  m.Key,
		Similarity:  m.Score,
	}
}

func piiMessage(kinds []detect.PIIKind) string {
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return fmt.Sprintf(
		"Personal information detected: %s. Please remove personal information from your query.",
		strings.Join(names, ", "),
	)
}
