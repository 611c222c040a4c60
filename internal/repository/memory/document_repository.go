package memory

import (
	"context"
	"time"

	"bail-assistant-be/internal/entity"
	"bail-assistant-be/internal/repository/contract"
	"bail-assistant-be/pkg/document"

	"github.com/patrickmn/go-cache"
)

// stored mirrors the durable layout: the tree is kept serialized so every
// load goes through the same decode path as the database-backed store.
type stored struct {
	tree      []byte
	createdAt time.Time
	updatedAt time.Time
}

// DocumentRepository is the in-memory document store used for local
// development and tests. Entries never expire: the session is the unit of
// persistence, not a cache line.
type DocumentRepository struct {
	cache *cache.Cache
}

func NewDocumentRepository() *DocumentRepository {
	return &DocumentRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

var _ contract.DocumentSessionRepository = (*DocumentRepository)(nil)

func (r *DocumentRepository) Find(ctx context.Context, sessionID string) (*entity.DocumentSession, error) {
	x, found := r.cache.Get(sessionID)
	if !found {
		return nil, nil
	}
	s := x.(stored)
	tree, err := document.DecodeTree(s.tree)
	if err != nil {
		return nil, err
	}
	updatedAt := s.updatedAt
	return &entity.DocumentSession{
		SessionID: sessionID,
		Tree:      tree,
		CreatedAt: s.createdAt,
		UpdatedAt: &updatedAt,
	}, nil
}

func (r *DocumentRepository) Save(ctx context.Context, session *entity.DocumentSession) error {
	data, err := document.EncodeTree(session.Tree)
	if err != nil {
		return err
	}
	createdAt := session.CreatedAt
	if x, found := r.cache.Get(session.SessionID); found {
		createdAt = x.(stored).createdAt
	}
	r.cache.Set(session.SessionID, stored{
		tree:      data,
		createdAt: createdAt,
		updatedAt: time.Now(),
	}, cache.NoExpiration)
	return nil
}
