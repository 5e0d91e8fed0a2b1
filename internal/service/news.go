package service

import (
	"context"
	"fmt"

	"tvusm/internal/apperror"
	"tvusm/internal/cache"
	"tvusm/internal/logger"
	"tvusm/internal/models"
	"tvusm/internal/repository"
	"tvusm/internal/search"
)

// NewsService serves articles. Redis deduplicates view counting per viewer;
// Elasticsearch backs full-text search when configured, with plain SQL
// listing as the fallback.
type NewsService struct {
	newsRepo     *repository.NewsRepository
	viewCache    *cache.Client
	searchClient *search.NewsClient
}

func NewNewsService(newsRepo *repository.NewsRepository, viewCache *cache.Client, searchClient *search.NewsClient) *NewsService {
	return &NewsService{
		newsRepo:     newsRepo,
		viewCache:    viewCache,
		searchClient: searchClient,
	}
}

func (s *NewsService) Create(ctx context.Context, req *models.CreateNewsRequest) (*models.News, error) {
	article := &models.News{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
	}
	if article.Category == "" {
		article.Category = "general"
	}

	if err := s.newsRepo.Create(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to create article: %w", err)
	}

	return article, nil
}

// Get returns one article and counts the view. The same viewer reading the
// article again within the dedup window does not bump the counter.
func (s *NewsService) Get(ctx context.Context, id int64, viewer string) (*models.News, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	if article == nil {
		return nil, apperror.NotFound("article")
	}

	if viewer != "" && s.viewCache != nil {
		first, err := s.viewCache.MarkViewed(ctx, id, viewer)
		if err != nil {
			// Count the view anyway rather than fail the read
			logger.WithContext(ctx).Warn("View dedup unavailable",
				"error", err,
				"news_id", id)
			first = true
		}
		if first {
			if err := s.newsRepo.IncrementViewCount(ctx, id); err != nil {
				logger.WithContext(ctx).Error("Failed to increment view count",
					"error", err,
					"news_id", id)
			} else {
				article.ViewCount++
			}
		}
	}

	return article, nil
}

func (s *NewsService) List(ctx context.Context, category string, publishedOnly bool, page, pageSize int) ([]models.News, error) {
	items, err := s.newsRepo.List(ctx, category, publishedOnly, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return items, nil
}

// Search runs full-text search over published articles. Without a search
// backend the query falls back to category-filtered SQL listing.
func (s *NewsService) Search(ctx context.Context, query, category string, page, pageSize int) ([]models.News, error) {
	if s.searchClient == nil {
		return s.List(ctx, category, true, page, pageSize)
	}

	items, err := s.searchClient.Search(ctx, query, category, page, pageSize)
	if err != nil {
		logger.WithContext(ctx).Error("Search backend failed, falling back to SQL",
			"error", err,
			"query", query)
		return s.List(ctx, category, true, page, pageSize)
	}

	return items, nil
}

func (s *NewsService) Update(ctx context.Context, id int64, req *models.UpdateNewsRequest) (*models.News, error) {
	article, err := s.newsRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get article: %w", err)
	}
	if article == nil {
		return nil, apperror.NotFound("article")
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Content != nil {
		article.Content = *req.Content
	}
	if req.Category != nil {
		article.Category = *req.Category
	}
	if req.Published != nil {
		article.Published = *req.Published
	}

	if err := s.newsRepo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("failed to update article: %w", err)
	}

	if s.searchClient != nil && article.Published {
		if err := s.searchClient.IndexNews(ctx, article); err != nil {
			// The article is committed; search catches up on the next update
			logger.WithContext(ctx).Error("Failed to index article",
				"error", err,
				"news_id", article.ID)
		}
	}

	return article, nil
}
