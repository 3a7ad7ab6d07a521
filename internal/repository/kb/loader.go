package kb

import (
	"context"

	"go.uber.org/zap"

	"github.com/fundwise/faqd/internal/domain/faq"
)

// Source supplies the raw knowledge-base document.
type Source interface {
	ReadAll(ctx context.Context) ([]byte, error)
}

// Load reads the source and builds the knowledge base. Any failure degrades
// to an empty knowledge base after a warning: the process keeps serving and
// every query resolves to no_match.
func Load(ctx context.Context, src Source, logger *zap.Logger) *faq.KnowledgeBase {
	data, err := src.ReadAll(ctx)
	if err != nil {
		logger.Warn("knowledge base source unavailable, starting empty", zap.Error(err))
		return faq.Empty()
	}

	kb, err := Decode(data, logger)
	if err != nil {
		logger.Warn("knowledge base malformed, starting empty", zap.Error(err))
		return faq.Empty()
	}

	logger.Info("knowledge base loaded", zap.Int("entries", kb.Len()))
	return kb
}
