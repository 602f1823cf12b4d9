// util/cache_service.go

package util

import (
	"context"

	"github.com/meridianhealth/clinicgate/db"
	"github.com/meridianhealth/clinicgate/model"
)

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetAnalytics(ctx context.Context) (*model.AnonymizedAnalyticsData, error) {
	return db.GetCachedAnalytics(ctx)
}

func (c *CacheService) SetAnalytics(ctx context.Context, data model.AnonymizedAnalyticsData) error {
	return db.CacheAnalytics(ctx, &data)
}
