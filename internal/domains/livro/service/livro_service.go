package service

import (
	"context"
	"fmt"
	"time"

	"livraria-api/internal/domains/livro/model"
	"livraria-api/internal/domains/livro/repository"
	"livraria-api/pkg/cache"
	"livraria-api/pkg/logger"
)

const detailCacheTTL = 10 * time.Minute

type livroService struct {
	repo  repository.LivroRepository
	cache cache.Cache
}

// NewLivroService - constructor with DI.
func NewLivroService(repo repository.LivroRepository, c cache.Cache) LivroService {
	return &livroService{repo: repo, cache: c}
}

func detailCacheKey(id int64) string {
	return fmt.Sprintf("livros:detail:%d", id)
}

func (s *livroService) ListAll(ctx context.Context) ([]model.Livro, error) {
	return s.repo.GetAll(ctx)
}

// GetByID serves reads through the cache. Cache failures are never fatal:
// the store stays the source of truth.
func (s *livroService) GetByID(ctx context.Context, id int64) (*model.Livro, error) {
	key := detailCacheKey(id)

	var cached model.Livro
	found, err := s.cache.Get(ctx, key, &cached)
	if err != nil {
		logger.Warn("cache read failed", err)
	}
	if found {
		return &cached, nil
	}

	livro, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, key, livro, detailCacheTTL); err != nil {
		logger.Warn("cache write failed", err)
	}

	return livro, nil
}

func (s *livroService) GetByGenre(ctx context.Context, genero string) ([]model.Livro, error) {
	return s.repo.GetByGenre(ctx, genero)
}

func (s *livroService) ListPaginated(ctx context.Context, page, limit int) (*model.PaginatedResult, error) {
	return s.repo.GetAllPaginated(ctx, page, limit)
}

func (s *livroService) Create(ctx context.Context, req model.CreateLivroRequest) (*model.Livro, error) {
	return s.repo.Create(ctx, req)
}

// Update checks existence first so an absent id never reaches the UPDATE,
// then re-fetches the row so the caller sees the stored state.
func (s *livroService) Update(ctx context.Context, id int64, req model.UpdateLivroRequest) (*model.Livro, error) {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	if !req.Empty() {
		if _, err := s.repo.Update(ctx, id, req); err != nil {
			return nil, err
		}
	}

	s.invalidate(ctx, id)

	return s.repo.GetByID(ctx, id)
}

func (s *livroService) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if count == 0 {
		return model.ErrLivroNaoEncontrado
	}

	s.invalidate(ctx, id)
	return nil
}

func (s *livroService) invalidate(ctx context.Context, id int64) {
	if err := s.cache.Delete(ctx, detailCacheKey(id)); err != nil {
		logger.Warn("cache invalidation failed", err)
	}
}
