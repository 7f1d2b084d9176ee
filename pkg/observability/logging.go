package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/oncoscreen/pkg/domain"
)

// LoggingHooks logs every lifecycle event at info level.
func LoggingHooks(logger *slog.Logger) domain.LifecycleHooks {
	log := func(ctx context.Context, e *domain.Event) {
		attrs := []any{
			"session_id", e.SessionID,
			"catalog_id", e.CatalogID,
			"path_length", e.PathLength,
		}
		if e.QuestionID != "" {
			attrs = append(attrs, "question_id", e.QuestionID)
		}
		if e.OptionID != "" {
			attrs = append(attrs, "option_id", e.OptionID)
		}
		logger.InfoContext(ctx, string(e.Type), attrs...)
	}
	return domain.LifecycleHooks{
		OnTestSelected:   log,
		OnAnswer:         log,
		OnRecommendation: log,
		OnBack:           log,
		OnReset:          log,
		OnExit:           log,
	}
}
