package logging

import (
	"context"
	"log/slog"
	"strings"
)

const (
	// FieldComponent names the subsystem emitting the record.
	FieldComponent = "component"
	// FieldDataset is the dataset an operation works on.
	FieldDataset = "dataset"
	// FieldRater is the rater a plan is assigned to.
	FieldRater = "rater"
	// FieldPlanID is the inspection plan identifier.
	FieldPlanID = "plan_id"
	// FieldEventType classifies a record for filtering.
	FieldEventType = "event_type"
	// FieldErrorHint suggests a next step for the operator.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
)

type contextKey struct{ name string }

var (
	datasetKey = contextKey{"dataset"}
	raterKey   = contextKey{"rater"}
	planIDKey  = contextKey{"plan_id"}
)

// WithDataset stores the dataset name on ctx.
func WithDataset(ctx context.Context, dataset string) context.Context {
	return context.WithValue(ctx, datasetKey, strings.TrimSpace(dataset))
}

// WithRater stores the rater name on ctx.
func WithRater(ctx context.Context, rater string) context.Context {
	return context.WithValue(ctx, raterKey, strings.TrimSpace(rater))
}

// WithPlanID stores the plan identifier on ctx.
func WithPlanID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, planIDKey, strings.TrimSpace(id))
}

// ContextFields returns the logging attributes recorded on ctx.
func ContextFields(ctx context.Context) []slog.Attr {
	if ctx == nil {
		return nil
	}
	var attrs []slog.Attr
	for _, entry := range []struct {
		key   contextKey
		field string
	}{
		{datasetKey, FieldDataset},
		{raterKey, FieldRater},
		{planIDKey, FieldPlanID},
	} {
		if value, ok := ctx.Value(entry.key).(string); ok && value != "" {
			attrs = append(attrs, slog.String(entry.field, value))
		}
	}
	return attrs
}

// WithContext decorates logger with the fields recorded on ctx.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	return logger.With(Args(fields...)...)
}
