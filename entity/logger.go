package entity

import "context"

// Logger specifies a contextual, structured logger.
// Satisfied by sabot, wired up in cmd/vellum.
type Logger interface {
	Info(ctx context.Context, msg string, kv ...any)
	Error(ctx context.Context, msg string, err error, kv ...any)
}
