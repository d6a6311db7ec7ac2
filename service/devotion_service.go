// file: service/devotion_service.go

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"isidro-api/model"
	"isidro-api/repository"
	"time"
)

const devotionCacheTTL = 10 * time.Minute

// DevotionService wraps the devotion repository with a cache-aside Redis
// cache over per-user devotion lists. Every write invalidates the owner's
// cached list.
type DevotionService struct {
	repo  repository.IDevotionRepository
	cache ICacheClient
}

func NewDevotionService(repo repository.IDevotionRepository, cache ICacheClient) *DevotionService {
	return &DevotionService{repo: repo, cache: cache}
}

func devotionCacheKey(userID int) string {
	return fmt.Sprintf("devotions:%d", userID)
}

func (s *DevotionService) CreateDevotion(ctx context.Context, userID int, req model.DevotionRequest) (*model.Devotion, error) {
	devotion := &model.Devotion{
		UserID:    userID,
		Date:      req.Date,
		Scripture: req.Scripture,
		Insight:   req.Insight,
		Prayer:    req.Prayer,
	}

	if err := s.repo.Create(devotion); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, devotionCacheKey(userID))
	return devotion, nil
}

// ListDevotionsForUser lists a user's devotions with a cache-aside strategy.
// Only the default window (skip=0, limit=100) is cached; other windows go
// straight to the database.
func (s *DevotionService) ListDevotionsForUser(ctx context.Context, userID, skip, limit int) ([]*model.Devotion, error) {
	cacheable := skip == 0 && limit == 100
	cacheKey := devotionCacheKey(userID)

	if cacheable {
		cached, err := s.cache.Get(ctx, cacheKey).Result()
		if err == nil {
			var devotions []*model.Devotion
			if err := json.Unmarshal([]byte(cached), &devotions); err == nil {
				return devotions, nil
			}
		}
	}

	devotions, err := s.repo.GetByUserID(userID, skip, limit)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if data, err := json.Marshal(devotions); err == nil {
			s.cache.Set(ctx, cacheKey, data, devotionCacheTTL)
		}
	}

	return devotions, nil
}

func (s *DevotionService) GetDevotion(userID, devotionID int) (*model.Devotion, error) {
	return s.repo.GetByID(userID, devotionID)
}

func (s *DevotionService) UpdateDevotion(ctx context.Context, userID, devotionID int, req model.DevotionRequest) (*model.Devotion, error) {
	devotion := &model.Devotion{
		ID:        devotionID,
		UserID:    userID,
		Date:      req.Date,
		Scripture: req.Scripture,
		Insight:   req.Insight,
		Prayer:    req.Prayer,
	}

	if err := s.repo.Update(devotion); err != nil {
		return nil, err
	}

	s.cache.Del(ctx, devotionCacheKey(userID))
	return s.repo.GetByID(userID, devotionID)
}

func (s *DevotionService) DeleteDevotion(ctx context.Context, userID, devotionID int) error {
	if err := s.repo.Delete(userID, devotionID); err != nil {
		return err
	}

	s.cache.Del(ctx, devotionCacheKey(userID))
	return nil
}
