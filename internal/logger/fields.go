package logger

import (
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	FieldFlow      = "flow"
	FieldRequestID = "request_id"
	FieldOrigin    = "origin"
	FieldOutcome   = "outcome"
	FieldTook      = "took"
)

func orNop(l *zap.Logger) *zap.Logger {
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// ForFlow tags l with the workflow name. A nil logger becomes a no-op one.
func ForFlow(l *zap.Logger, flow string) *zap.Logger {
	l = orNop(l)
	if flow = strings.TrimSpace(flow); flow == "" {
		return l
	}
	return l.Named(flow).With(zap.String(FieldFlow, flow))
}

// ForSubmission scopes l to one dispatched request.
func ForSubmission(l *zap.Logger, requestID string) *zap.Logger {
	l = orNop(l)
	if requestID = strings.TrimSpace(requestID); requestID == "" {
		return l
	}
	return l.With(zap.String(FieldRequestID, requestID))
}

// Settlement describes how a submission ended. An empty origin is left out;
// batch results have none.
func Settlement(origin, outcome string, took time.Duration) []zap.Field {
	fields := make([]zap.Field, 0, 3)
	if origin != "" {
		fields = append(fields, zap.String(FieldOrigin, origin))
	}
	return append(fields,
		zap.String(FieldOutcome, outcome),
		zap.Duration(FieldTook, took),
	)
}
