package mapper

import (
	"time"

	"bail-assistant-be/internal/entity"
	"bail-assistant-be/internal/model"
	"bail-assistant-be/pkg/document"

	"gorm.io/datatypes"
)

type DocumentMapper struct{}

func NewDocumentMapper() *DocumentMapper {
	return &DocumentMapper{}
}

// SessionToModel serializes the node tree into the JSON column. The
// round-trip law applies: ToEntity(ToModel(e)) yields a deep-equal tree.
func (m *DocumentMapper) SessionToModel(e *entity.DocumentSession) (*model.DocumentSession, error) {
	if e == nil {
		return nil, nil
	}
	data, err := document.EncodeTree(e.Tree)
	if err != nil {
		return nil, err
	}
	out := &model.DocumentSession{
		SessionID: e.SessionID,
		Tree:      datatypes.JSON(data),
		CreatedAt: e.CreatedAt,
	}
	if e.UpdatedAt != nil {
		out.UpdatedAt = *e.UpdatedAt
	}
	return out, nil
}

func (m *DocumentMapper) SessionToEntity(s *model.DocumentSession) (*entity.DocumentSession, error) {
	if s == nil {
		return nil, nil
	}
	tree, err := document.DecodeTree([]byte(s.Tree))
	if err != nil {
		return nil, err
	}
	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}
	return &entity.DocumentSession{
		SessionID: s.SessionID,
		Tree:      tree,
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}, nil
}
