package llm

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// loggingProvider logs every request with latency, token usage, and
// an estimated cost.
type loggingProvider struct {
	next   Provider
	logger *zap.Logger
}

// WithLogging wraps a Provider with structured request logging.
// A nil logger disables logging.
func WithLogging(p Provider, logger *zap.Logger) Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &loggingProvider{next: p, logger: logger}
}

func (l *loggingProvider) ModelID() string { return l.next.ModelID() }

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.next.Generate(ctx, req)

	purpose := req.Purpose
	if purpose == "" {
		purpose = "unspecified"
	}
	fields := []zap.Field{
		zap.String("model", l.next.ModelID()),
		zap.String("purpose", purpose),
		zap.Int64("latency_ms", time.Since(start).Milliseconds()),
	}
	if req.Schema != nil {
		fields = append(fields, zap.String("schema", req.Schema.Name))
	}

	if resp != nil {
		fields = append(fields,
			zap.String("served_by", resp.Model),
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
		if cost, ok := estimateCost(resp.Model, resp.Usage); ok {
			fields = append(fields, zap.Float64("cost_usd", cost))
		}
		if resp.Truncated {
			fields = append(fields, zap.Bool("truncated", true))
		}
	}

	if err != nil {
		fields = append(fields, zap.Error(err))
		l.logger.Warn("llm request failed", fields...)
	} else {
		l.logger.Info("llm request", fields...)
	}

	return resp, err
}
