package ctxutil

import "context"

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	subjectKey   ctxKey = "subject"
)

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// WithSubject stores the authenticated token subject in the context.
func WithSubject(ctx context.Context, sub string) context.Context {
	return context.WithValue(ctx, subjectKey, sub)
}

// SubjectFromCtx extracts the authenticated token subject from the context.
// Returns an empty string and false if absent.
func SubjectFromCtx(ctx context.Context) (string, bool) {
	sub, ok := ctx.Value(subjectKey).(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
