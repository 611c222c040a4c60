package service

import (
	"context"
	"time"

	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/entity"
	"bail-assistant-be/internal/pkg/logger"
	"bail-assistant-be/internal/repository/specification"
	"bail-assistant-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// IConversationService stores the assistant dialogue that drives the
// document, keyed by the same session id as the document tree.
type IConversationService interface {
	AppendMessage(ctx context.Context, sessionID string, req dto.AppendMessageRequest) (*dto.MessageResponse, error)
	GetHistory(ctx context.Context, sessionID string, page, limit int, role string) ([]*dto.MessageResponse, error)
	ListSessions(ctx context.Context) (*dto.SessionListResponse, error)
	ClearSession(ctx context.Context, sessionID string) error
}

type conversationService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewConversationService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IConversationService {
	return &conversationService{
		uowFactory: uowFactory,
		logger:     log,
	}
}

func (s *conversationService) AppendMessage(ctx context.Context, sessionID string, req dto.AppendMessageRequest) (*dto.MessageResponse, error) {
	msg := &entity.ConversationMessage{
		Id:        uuid.New(),
		SessionID: sessionID,
		Role:      req.Role,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().Append(ctx, msg); err != nil {
		return nil, err
	}

	s.logger.Info("ConversationService", "Message appended", map[string]interface{}{
		"session_id": sessionID,
		"role":       req.Role,
	})
	return messageToResponse(msg), nil
}

func (s *conversationService) GetHistory(ctx context.Context, sessionID string, page, limit int, role string) ([]*dto.MessageResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 200 {
		limit = 50
	}

	specs := []specification.Specification{
		specification.BySessionID{SessionID: sessionID},
	}
	if role != "" {
		specs = append(specs, specification.ByRole{Role: role})
	}
	specs = append(specs,
		specification.OrderBy{Field: "created_at"},
		specification.Pagination{Limit: limit, Offset: (page - 1) * limit},
	)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	messages, err := uow.ConversationRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		responses = append(responses, messageToResponse(msg))
	}
	return responses, nil
}

func (s *conversationService) ListSessions(ctx context.Context) (*dto.SessionListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	ids, err := uow.ConversationRepository().ListSessionIDs(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SessionListResponse{SessionIDs: ids}, nil
}

func (s *conversationService) ClearSession(ctx context.Context, sessionID string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ConversationRepository().DeleteBySession(ctx, sessionID); err != nil {
		return err
	}
	s.logger.Info("ConversationService", "Session history cleared", map[string]interface{}{
		"session_id": sessionID,
	})
	return nil
}

func messageToResponse(msg *entity.ConversationMessage) *dto.MessageResponse {
	return &dto.MessageResponse{
		Id:        msg.Id.String(),
		SessionID: msg.SessionID,
		Role:      msg.Role,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}
}
