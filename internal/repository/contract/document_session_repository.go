package contract

import (
	"context"

	"bail-assistant-be/internal/entity"
)

// DocumentSessionRepository persists one document tree per session id.
type DocumentSessionRepository interface {
	// Find returns the session, or (nil, nil) when no tree is persisted for
	// that id. Unknown ids are not an error: the caller materializes them
	// from the template.
	Find(ctx context.Context, sessionID string) (*entity.DocumentSession, error)
	// Save overwrites any prior persisted state for the session id.
	Save(ctx context.Context, session *entity.DocumentSession) error
}
