package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livraria-api/internal/domains/livro/model"
	infracache "livraria-api/internal/infrastructure/cache"
)

// countingRepo serves a single livro and counts store reads.
type countingRepo struct {
	livro       model.Livro
	getByIDHits int
	updateHits  int
	deleteCount int64
	deleteErr   error
}

func (r *countingRepo) GetAll(context.Context) ([]model.Livro, error) {
	return []model.Livro{r.livro}, nil
}

func (r *countingRepo) GetByID(context.Context, int64) (*model.Livro, error) {
	r.getByIDHits++
	current := r.livro
	return &current, nil
}

func (r *countingRepo) GetByGenre(context.Context, string) ([]model.Livro, error) {
	return []model.Livro{r.livro}, nil
}

func (r *countingRepo) GetAllPaginated(_ context.Context, page, limit int) (*model.PaginatedResult, error) {
	return &model.PaginatedResult{Items: []model.Livro{r.livro}, TotalItems: 1, TotalPages: 1, CurrentPage: page, PageSize: limit}, nil
}

func (r *countingRepo) Create(_ context.Context, req model.CreateLivroRequest) (*model.Livro, error) {
	return &model.Livro{ID: 2, Titulo: req.Titulo}, nil
}

func (r *countingRepo) Update(_ context.Context, _ int64, req model.UpdateLivroRequest) (int64, error) {
	r.updateHits++
	if req.Titulo != nil {
		r.livro.Titulo = *req.Titulo
	}
	return 1, nil
}

func (r *countingRepo) Delete(context.Context, int64) (int64, error) {
	return r.deleteCount, r.deleteErr
}

func newTestService(repo *countingRepo) LivroService {
	return NewLivroService(repo, infracache.NewMemoryCache())
}

func TestGetByIDCachesReads(t *testing.T) {
	repo := &countingRepo{livro: model.Livro{ID: 1, Titulo: "Livro A"}}
	svc := newTestService(repo)
	ctx := context.Background()

	first, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)

	second, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.getByIDHits, "second read must come from the cache")
}

func TestUpdateInvalidatesCache(t *testing.T) {
	repo := &countingRepo{livro: model.Livro{ID: 1, Titulo: "Livro A"}}
	svc := newTestService(repo)
	ctx := context.Background()

	_, err := svc.GetByID(ctx, 1) // warm the cache
	require.NoError(t, err)

	novo := "Livro B"
	updated, err := svc.Update(ctx, 1, model.UpdateLivroRequest{Titulo: &novo})
	require.NoError(t, err)
	assert.Equal(t, "Livro B", updated.Titulo)

	fresh, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Livro B", fresh.Titulo, "stale cached titulo must not survive the update")
}

func TestUpdateWithNoFieldsSkipsTheUpdate(t *testing.T) {
	repo := &countingRepo{livro: model.Livro{ID: 1, Titulo: "Livro A"}}
	svc := newTestService(repo)

	livro, err := svc.Update(context.Background(), 1, model.UpdateLivroRequest{})
	require.NoError(t, err)

	assert.Equal(t, "Livro A", livro.Titulo)
	assert.Zero(t, repo.updateHits)
}

func TestDeleteMapsAffectedRows(t *testing.T) {
	t.Run("zero rows is not found", func(t *testing.T) {
		repo := &countingRepo{deleteCount: 0}
		err := newTestService(repo).Delete(context.Background(), 99)

		assert.ErrorIs(t, err, model.ErrLivroNaoEncontrado)
	})

	t.Run("one row succeeds and drops the cached entry", func(t *testing.T) {
		repo := &countingRepo{livro: model.Livro{ID: 1, Titulo: "Livro A"}, deleteCount: 1}
		svc := newTestService(repo)
		ctx := context.Background()

		_, err := svc.GetByID(ctx, 1)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, 1))

		_, err = svc.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, repo.getByIDHits, "read after delete must hit the store again")
	})

	t.Run("store failure passes through", func(t *testing.T) {
		storeErr := model.StoreFailure(errors.New("disk full"))
		repo := &countingRepo{deleteErr: storeErr}
		err := newTestService(repo).Delete(context.Background(), 1)

		assert.ErrorIs(t, err, storeErr)
	})
}
