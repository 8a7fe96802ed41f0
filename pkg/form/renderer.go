package form

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/validator"
)

// Renderer draws field feedback. Calls may arrive from debounce timer
// goroutines, so implementations must be safe for concurrent use.
type Renderer interface {
	ShowError(ctx context.Context, field, message string)
	ShowSuccess(ctx context.Context, field string)
	Clear(ctx context.Context, field string)
	Attach(ctx context.Context, d Descriptor)
	Update(ctx context.Context, d Descriptor)
	Detach(ctx context.Context, field string)
	// ShowStrength updates the strength meter of field; visible is false when
	// the field is empty and the meter should be hidden.
	ShowStrength(ctx context.Context, field string, s validator.Strength, visible bool)
}

// NopRenderer discards all feedback.
type NopRenderer struct{}

func (NopRenderer) ShowError(context.Context, string, string) {}
func (NopRenderer) ShowSuccess(context.Context, string) {}
func (NopRenderer) Clear(context.Context, string) {}
func (NopRenderer) Attach(context.Context, Descriptor) {}
func (NopRenderer) Update(context.Context, Descriptor) {}
func (NopRenderer) Detach(context.Context, string) {}
func (NopRenderer) ShowStrength(context.Context, string, validator.Strength, bool) {}

// LogRenderer writes field feedback to a logger, for headless runs.
type LogRenderer struct {
	logger *slog.Logger
}

func NewLogRenderer(l *slog.Logger) *LogRenderer {
	if l == nil {
		l = slog.Default()
	}
	return &LogRenderer{logger: l.With(logger.Component("form"))}
}

func (r *LogRenderer) ShowError(ctx context.Context, field, message string) {
	r.logger.LogAttrs(ctx, slog.LevelInfo, "field invalid", logger.Field(field), slog.String("message", message))
}

func (r *LogRenderer) ShowSuccess(ctx context.Context, field string) {
	r.logger.LogAttrs(ctx, slog.LevelDebug, "field valid", logger.Field(field))
}

func (r *LogRenderer) Clear(ctx context.Context, field string) {
	r.logger.LogAttrs(ctx, slog.LevelDebug, "field cleared", logger.Field(field))
}

func (r *LogRenderer) Attach(ctx context.Context, d Descriptor) {
	r.logger.LogAttrs(ctx, slog.LevelInfo, "field added",
		logger.Field(d.Name),
		slog.String("label", d.Label),
		slog.String("type", string(d.Type)),
		slog.Bool("required", d.Required),
	)
}

func (r *LogRenderer) Update(ctx context.Context, d Descriptor) {
	r.logger.LogAttrs(ctx, slog.LevelInfo, "field updated",
		logger.Field(d.Name),
		slog.String("label", d.Label),
		slog.String("type", string(d.Type)),
		slog.Bool("required", d.Required),
	)
}

func (r *LogRenderer) Detach(ctx context.Context, field string) {
	r.logger.LogAttrs(ctx, slog.LevelInfo, "field removed", logger.Field(field))
}

func (r *LogRenderer) ShowStrength(ctx context.Context, field string, s validator.Strength, visible bool) {
	if !visible {
		return
	}
	r.logger.LogAttrs(ctx, slog.LevelDebug, "password strength",
		logger.Field(field),
		slog.String("level", s.Level.Key()),
		slog.Int("score", s.Score),
	)
}
