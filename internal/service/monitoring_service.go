package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"bail-assistant-be/internal/dto"
	"bail-assistant-be/internal/pkg/logger"
	"bail-assistant-be/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

// IMonitoringService tracks per-session operation counters and exposes an
// aggregate view for the admin surface. Counters live in Redis so multiple
// instances agree; without Redis the service degrades to a no-op.
type IMonitoringService interface {
	RecordOperation(ctx context.Context, sessionID, operation string)
	GetStats(ctx context.Context) (*dto.MonitoringStatsResponse, error)
}

type monitoringService struct {
	rdb          *redis.Client
	conversation contract.ConversationRepository
	logger       logger.ILogger
}

func NewMonitoringService(rdb *redis.Client, conversation contract.ConversationRepository, log logger.ILogger) IMonitoringService {
	return &monitoringService{
		rdb:          rdb,
		conversation: conversation,
		logger:       log,
	}
}

func operationKey(sessionID string) string {
	return fmt.Sprintf("stats:session:%s:operations", sessionID)
}

func (s *monitoringService) RecordOperation(ctx context.Context, sessionID, operation string) {
	if s.rdb == nil {
		return
	}
	pipe := s.rdb.Pipeline()
	pipe.HIncrBy(ctx, operationKey(sessionID), operation, 1)
	pipe.HSet(ctx, operationKey(sessionID), "last_activity", time.Now().Format(time.RFC3339))
	pipe.SAdd(ctx, "stats:sessions", sessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("MonitoringService", "Failed to record operation", map[string]interface{}{
			"error":      err.Error(),
			"session_id": sessionID,
		})
	}
}

func (s *monitoringService) GetStats(ctx context.Context) (*dto.MonitoringStatsResponse, error) {
	resp := &dto.MonitoringStatsResponse{Sessions: []dto.SessionStats{}}

	messageCount, err := s.conversation.Count(ctx)
	if err != nil {
		return nil, err
	}
	resp.TotalMessages = messageCount

	if s.rdb == nil {
		return resp, nil
	}

	sessionIDs, err := s.rdb.SMembers(ctx, "stats:sessions").Result()
	if err != nil {
		return nil, err
	}
	resp.TotalSessions = len(sessionIDs)

	for _, sessionID := range sessionIDs {
		fields, err := s.rdb.HGetAll(ctx, operationKey(sessionID)).Result()
		if err != nil {
			s.logger.Warn("MonitoringService", "Failed to read session counters", map[string]interface{}{
				"error":      err.Error(),
				"session_id": sessionID,
			})
			continue
		}
		stats := dto.SessionStats{
			SessionID:  sessionID,
			Operations: map[string]int64{},
		}
		for field, raw := range fields {
			if field == "last_activity" {
				stats.LastActivity = raw
				continue
			}
			if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
				stats.Operations[field] = n
				resp.TotalOperations += n
			}
		}
		resp.Sessions = append(resp.Sessions, stats)
	}

	return resp, nil
}
