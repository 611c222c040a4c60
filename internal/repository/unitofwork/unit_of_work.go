package unitofwork

import (
	"context"

	"bail-assistant-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	DocumentSessionRepository() contract.DocumentSessionRepository
	ConversationRepository() contract.ConversationRepository
	UserRepository() contract.UserRepository
}
