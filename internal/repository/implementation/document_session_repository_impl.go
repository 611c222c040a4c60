package implementation

import (
	"context"
	"errors"

	"bail-assistant-be/internal/entity"
	"bail-assistant-be/internal/mapper"
	"bail-assistant-be/internal/model"
	"bail-assistant-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DocumentSessionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DocumentMapper
}

func NewDocumentSessionRepository(db *gorm.DB) contract.DocumentSessionRepository {
	return &DocumentSessionRepositoryImpl{
		db:     db,
		mapper: mapper.NewDocumentMapper(),
	}
}

func (r *DocumentSessionRepositoryImpl) Find(ctx context.Context, sessionID string) (*entity.DocumentSession, error) {
	var m model.DocumentSession
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.SessionToEntity(&m)
}

func (r *DocumentSessionRepositoryImpl) Save(ctx context.Context, session *entity.DocumentSession) error {
	m, err := r.mapper.SessionToModel(session)
	if err != nil {
		return err
	}
	// Upsert: a save always overwrites the full tree for the session id.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"tree", "updated_at"}),
	}).Create(m).Error
}
