package entity

import (
	"time"

	"bail-assistant-be/pkg/document"
)

// DocumentSession is one per-session instance of the lease template: the
// unit of persistence and isolation, keyed by an opaque session id.
type DocumentSession struct {
	SessionID string
	Tree      *document.Section
	CreatedAt time.Time
	UpdatedAt *time.Time
}
