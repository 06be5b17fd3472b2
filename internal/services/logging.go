package services

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type requestIDKey struct{}

// ContextWithRequestID attaches the HTTP request ID so service logs can be
// correlated with access logs.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

func logger(ctx context.Context) *log.Entry {
	entry := log.NewEntry(log.StandardLogger())
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		entry = entry.WithField("request_id", id)
	}
	return entry
}
