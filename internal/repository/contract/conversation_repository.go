package contract

import (
	"context"

	"bail-assistant-be/internal/entity"
	"bail-assistant-be/internal/repository/specification"
)

type ConversationRepository interface {
	Append(ctx context.Context, msg *entity.ConversationMessage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConversationMessage, error)
	ListSessionIDs(ctx context.Context) ([]string, error)
	DeleteBySession(ctx context.Context, sessionID string) error
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
