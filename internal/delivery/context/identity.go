package context

import (
	"context"

	"github.com/google/uuid"
)

// KeySubjectID is the key for the authenticated subject of the request.
// The access gate sets it after verifying a bearer token; it lives only for
// the duration of that request and is never stored in a global.
const KeySubjectID ContextKey = "subject_id"

// WithSubjectID returns a new context carrying the verified subject identifier.
func WithSubjectID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, KeySubjectID, id)
}

// SubjectID extracts the verified subject identifier from the context.
// The boolean is false when the request never passed the access gate.
func SubjectID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(KeySubjectID).(uuid.UUID)

	return id, ok
}
