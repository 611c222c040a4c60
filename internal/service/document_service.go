package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bail-assistant-be/internal/constant"
	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/entity"
	"bail-assistant-be/internal/pkg/logger"
	"bail-assistant-be/internal/repository/contract"
	"bail-assistant-be/pkg/document"
)

// IDocumentService is the tool surface of the document state engine. Every
// operation takes an opaque session id; unknown ids are materialized from
// the canonical template, never rejected.
type IDocumentService interface {
	GetOrCreate(ctx context.Context, sessionID string) (*entity.DocumentSession, error)
	GetTree(ctx context.Context, sessionID string) (*document.Section, error)
	GetProgress(ctx context.Context, sessionID string) (*dto.ProgressResponse, error)
	GetMissingFields(ctx context.Context, sessionID string, categories []string) (*dto.MissingFieldsResponse, error)
	GetListInfo(ctx context.Context, sessionID string, listPath string) (*document.ListInfo, error)
	AddListItem(ctx context.Context, sessionID string, listPath string) (int, error)
	RemoveListItem(ctx context.Context, sessionID string, listPath string, index int) error
	SetValues(ctx context.Context, sessionID string, updates []dto.FieldUpdate) (*dto.SetValuesResponse, error)
	AllPaths() *dto.AllPathsResponse
}

type documentService struct {
	template  *document.Template
	repo      contract.DocumentSessionRepository
	publisher IPublisherService
	logger    logger.ILogger

	// Serializes every read-modify-write cycle across all sessions. Coarse
	// on purpose: one store, one writer at a time.
	mu sync.Mutex
}

func NewDocumentService(
	template *document.Template,
	repo contract.DocumentSessionRepository,
	publisher IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		template:  template,
		repo:      repo,
		publisher: publisher,
		logger:    log,
	}
}

// loadOrCreate fetches the session tree, materializing it from the
// template on first reference. Callers must hold the mutex.
func (s *documentService) loadOrCreate(ctx context.Context, sessionID string) (*entity.DocumentSession, error) {
	session, err := s.repo.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}
	session = &entity.DocumentSession{
		SessionID: sessionID,
		Tree:      s.template.Instantiate(),
		CreatedAt: time.Now(),
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return nil, err
	}
	s.logger.Info("DocumentService", "Session created from template", map[string]interface{}{
		"session_id": sessionID,
	})
	return session, nil
}

func (s *documentService) GetOrCreate(ctx context.Context, sessionID string) (*entity.DocumentSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrCreate(ctx, sessionID)
}

func (s *documentService) GetTree(ctx context.Context, sessionID string) (*document.Section, error) {
	// Snapshot loaded under the lock so a half-written save is never read;
	// the lock is not held while callers use the snapshot.
	s.mu.Lock()
	session, err := s.loadOrCreate(ctx, sessionID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return session.Tree, nil
}

func (s *documentService) GetProgress(ctx context.Context, sessionID string) (*dto.ProgressResponse, error) {
	tree, err := s.GetTree(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	progress := document.Progress(tree)
	resp := &dto.ProgressResponse{
		Categories: make(map[string]dto.CategoryProgressResponse, len(progress)),
		Overall:    progressToDTO(document.Overall(progress)),
	}
	for category, p := range progress {
		resp.Categories[category] = progressToDTO(p)
	}
	return resp, nil
}

func progressToDTO(p document.CategoryProgress) dto.CategoryProgressResponse {
	out := dto.CategoryProgressResponse{
		Percentage: "N/A",
		Filled:     p.Filled,
		Total:      p.Total,
	}
	if p.Applicable() {
		out.Percentage = fmt.Sprintf("%d%%", p.Percentage())
	}
	return out
}

func (s *documentService) GetMissingFields(ctx context.Context, sessionID string, categories []string) (*dto.MissingFieldsResponse, error) {
	tree, err := s.GetTree(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	resp := &dto.MissingFieldsResponse{Categories: make(map[string][]string, len(categories))}
	for _, category := range categories {
		node, ok := tree.Get(category)
		if !ok {
			return nil, fmt.Errorf("%w: category %q", document.ErrKeyNotFound, category)
		}
		resp.Categories[category] = document.MissingRequiredPaths(node)
	}
	return resp, nil
}

func (s *documentService) GetListInfo(ctx context.Context, sessionID string, listPath string) (*document.ListInfo, error) {
	tree, err := s.GetTree(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return document.InspectList(tree, listPath)
}

func (s *documentService) AddListItem(ctx context.Context, sessionID string, listPath string) (int, error) {
	index, err := s.addListItem(ctx, sessionID, listPath)
	if err != nil {
		return 0, err
	}

	// Published outside the lock: the consumer re-reads the session and
	// must not contend with the writer that notified it.
	s.publisher.PublishDocumentUpdated(sessionID, constant.OperationAddListItem)
	s.logger.Info("DocumentService", "List item added", map[string]interface{}{
		"session_id": sessionID,
		"list_path":  listPath,
		"index":      index,
	})
	return index, nil
}

func (s *documentService) addListItem(ctx context.Context, sessionID string, listPath string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return 0, err
	}
	// New items are stamped from the canonical template's item schema;
	// the session's own item 0 is only a structural fallback.
	index, err := document.AddListItem(session.Tree, listPath, s.template.ItemSchema(listPath))
	if err != nil {
		return 0, err
	}
	if err := s.repo.Save(ctx, session); err != nil {
		return 0, err
	}
	return index, nil
}

func (s *documentService) RemoveListItem(ctx context.Context, sessionID string, listPath string, index int) error {
	if err := s.removeListItem(ctx, sessionID, listPath, index); err != nil {
		return err
	}

	s.publisher.PublishDocumentUpdated(sessionID, constant.OperationRemoveListItem)
	s.logger.Info("DocumentService", "List item removed", map[string]interface{}{
		"session_id": sessionID,
		"list_path":  listPath,
		"index":      index,
	})
	return nil
}

func (s *documentService) removeListItem(ctx context.Context, sessionID string, listPath string, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := document.RemoveListItem(session.Tree, listPath, index); err != nil {
		return err
	}
	return s.repo.Save(ctx, session)
}

func (s *documentService) SetValues(ctx context.Context, sessionID string, updates []dto.FieldUpdate) (*dto.SetValuesResponse, error) {
	resp, applied, err := s.setValues(ctx, sessionID, updates)
	if err != nil {
		return nil, err
	}

	if applied > 0 {
		s.publisher.PublishDocumentUpdated(sessionID, constant.OperationSetValues)
	}
	s.logger.Info("DocumentService", "Values updated", map[string]interface{}{
		"session_id": sessionID,
		"requested":  len(updates),
		"applied":    applied,
	})
	return resp, nil
}

func (s *documentService) setValues(ctx context.Context, sessionID string, updates []dto.FieldUpdate) (*dto.SetValuesResponse, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.loadOrCreate(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}

	resp := &dto.SetValuesResponse{Results: make([]dto.UpdateResult, 0, len(updates))}
	applied := 0
	for _, update := range updates {
		result := dto.UpdateResult{Path: update.Path}
		if err := s.applyUpdate(session.Tree, update); err != nil {
			result.Error = err.Error()
		} else {
			result.Success = true
			applied++
		}
		resp.Results = append(resp.Results, result)
	}

	// A batch is not atomic: successes persist even when neighbours fail.
	// An all-failure batch leaves the stored tree untouched.
	if applied > 0 {
		if err := s.repo.Save(ctx, session); err != nil {
			return nil, 0, err
		}
	}
	return resp, applied, nil
}

// applyUpdate coerces the incoming value toward the target field's declared
// type when the path addresses a field, then writes it.
func (s *documentService) applyUpdate(tree *document.Section, update dto.FieldUpdate) error {
	value := update.Value
	if field, err := document.GetField(tree, update.Path); err == nil {
		value = document.CoerceValue(field.Type, value)
	}
	return document.Set(tree, update.Path, value)
}

func (s *documentService) AllPaths() *dto.AllPathsResponse {
	paths := s.template.AllPaths()
	return &dto.AllPathsResponse{
		FieldPaths: paths.FieldPaths,
		ListPaths:  paths.ListPaths,
	}
}
