package service

import (
	"context"
	"net/url"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/resource-hub-web/internal/models"
	"github.com/noah-isme/resource-hub-web/pkg/config"
)

type resourceLister interface {
	Resources(ctx context.Context, bearer string, query url.Values) ([]models.Resource, error)
}

// DashboardOverview is the landing page's resource pair.
type DashboardOverview struct {
	Popular []models.Resource
	Recent  []models.Resource
}

// DashboardService assembles the landing page data.
type DashboardService struct {
	backend resourceLister
	logger  *zap.Logger
	config  config.DashboardConfig
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(backend resourceLister, logger *zap.Logger, cfg config.DashboardConfig) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PopularLimit <= 0 {
		cfg.PopularLimit = 8
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 8
	}
	return &DashboardService{backend: backend, logger: logger, config: cfg}
}

// Overview fetches the popular and recent resource lists concurrently and
// joins them. The pair is all-or-nothing: if either fetch fails, both lists
// come back empty. A partial dashboard is never rendered.
func (s *DashboardService) Overview(ctx context.Context, bearer string) DashboardOverview {
	var (
		wg         sync.WaitGroup
		popular    []models.Resource
		recent     []models.Resource
		popularErr error
		recentErr  error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		popular, popularErr = s.backend.Resources(ctx, bearer, sortedQuery(models.SortPopular, s.config.PopularLimit))
	}()
	go func() {
		defer wg.Done()
		recent, recentErr = s.backend.Resources(ctx, bearer, sortedQuery(models.SortRecent, s.config.RecentLimit))
	}()
	wg.Wait()

	if popularErr != nil || recentErr != nil {
		s.logger.Warn("dashboard fetch failed",
			zap.NamedError("popular", popularErr),
			zap.NamedError("recent", recentErr),
		)
		return DashboardOverview{}
	}

	return DashboardOverview{Popular: popular, Recent: recent}
}

func sortedQuery(sort string, limit int) url.Values {
	q := url.Values{}
	q.Set("sort", sort)
	q.Set("limit", strconv.Itoa(limit))
	return q
}
