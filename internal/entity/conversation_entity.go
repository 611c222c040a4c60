package entity

import (
	"time"

	"github.com/google/uuid"
)

// ConversationMessage is one exchange of the assistant conversation tied to
// a document session. Transcripts are stored independently of the document
// tree itself.
type ConversationMessage struct {
	Id        uuid.UUID
	SessionID string
	Role      string // "user" | "assistant"
	Content   string
	CreatedAt time.Time
}
