package service

import (
	"context"
	"fmt"
	"sync"

	"foodexpress-storefront/internal/domain"
)

// CatalogService holds the in-memory "all categories" / "all restaurants"
// snapshot shown on the landing page. Narrower reads (one category's menu,
// one restaurant) go straight to the backend and never touch this cache.
type CatalogService struct {
	fetcher CatalogFetcher

	mu          sync.RWMutex
	categories  []domain.Category
	restaurants []domain.Restaurant
}

func NewCatalogService(fetcher CatalogFetcher) *CatalogService {
	return &CatalogService{fetcher: fetcher}
}

// Refresh fetches categories and restaurants in parallel and joins the two
// all-or-nothing: if either fails, the previous snapshot stays intact and the
// caller gets a single error. No TTL; callers decide when to refresh.
func (s *CatalogService) Refresh(ctx context.Context) error {
	var (
		wg          sync.WaitGroup
		categories  []domain.Category
		restaurants []domain.Restaurant
		catErr      error
		restErr     error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		categories, catErr = s.fetcher.Categories(ctx)
	}()
	go func() {
		defer wg.Done()
		restaurants, restErr = s.fetcher.Restaurants(ctx)
	}()
	wg.Wait()

	if catErr != nil {
		return fmt.Errorf("refresh catalog: %w", catErr)
	}
	if restErr != nil {
		return fmt.Errorf("refresh catalog: %w", restErr)
	}

	s.mu.Lock()
	s.categories = categories
	s.restaurants = restaurants
	s.mu.Unlock()
	return nil
}

func (s *CatalogService) Categories() []domain.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Category{}, s.categories...)
}

func (s *CatalogService) Restaurants() []domain.Restaurant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Restaurant{}, s.restaurants...)
}

// Category looks one category up in the snapshot, for page headers.
func (s *CatalogService) Category(categoryID int) (domain.Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, category := range s.categories {
		if category.CategoryID == categoryID {
			return category, true
		}
	}
	return domain.Category{}, false
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
var _ CatalogRefresher = (*CatalogService)(nil)
