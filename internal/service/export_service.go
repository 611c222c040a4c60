package service

import (
	"context"

	"bail-assistant-be/internal/pkg/logger"
	"bail-assistant-be/internal/pkg/mailer"
	"bail-assistant-be/pkg/render"
)

const documentTitle = "Contrat de location de logement meublé"

// IExportService renders a session's document for human consumption:
// markdown, HTML, or an HTML email.
type IExportService interface {
	ExportMarkdown(ctx context.Context, sessionID string) (string, error)
	ExportHTML(ctx context.Context, sessionID string) ([]byte, error)
	EmailDocument(ctx context.Context, sessionID, to, subject string) error
}

type exportService struct {
	documents    IDocumentService
	emailService mailer.IEmailService
	logger       logger.ILogger
}

func NewExportService(documents IDocumentService, emailService mailer.IEmailService, log logger.ILogger) IExportService {
	return &exportService{
		documents:    documents,
		emailService: emailService,
		logger:       log,
	}
}

func (s *exportService) ExportMarkdown(ctx context.Context, sessionID string) (string, error) {
	tree, err := s.documents.GetTree(ctx, sessionID)
	if err != nil {
		return "", err
	}
	return render.Markdown(documentTitle, tree), nil
}

func (s *exportService) ExportHTML(ctx context.Context, sessionID string) ([]byte, error) {
	tree, err := s.documents.GetTree(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return render.HTML(documentTitle, tree)
}

func (s *exportService) EmailDocument(ctx context.Context, sessionID, to, subject string) error {
	html, err := s.ExportHTML(ctx, sessionID)
	if err != nil {
		return err
	}
	if subject == "" {
		subject = documentTitle
	}
	if err := s.emailService.SendDocument(to, subject, string(html)); err != nil {
		s.logger.Error("ExportService", "Failed to email document", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID,
		})
		return err
	}
	s.logger.Info("ExportService", "Document emailed", map[string]interface{}{
		"session_id": sessionID,
		"to":         to,
	})
	return nil
}
