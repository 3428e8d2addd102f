package service

import (
	"context"

	"livraria-api/internal/domains/livro/model"
)

// LivroService is the business layer behind the HTTP handlers.
type LivroService interface {
	ListAll(ctx context.Context) ([]model.Livro, error)
	GetByID(ctx context.Context, id int64) (*model.Livro, error)
	GetByGenre(ctx context.Context, genero string) ([]model.Livro, error)
	ListPaginated(ctx context.Context, page, limit int) (*model.PaginatedResult, error)
	Create(ctx context.Context, req model.CreateLivroRequest) (*model.Livro, error)
	Update(ctx context.Context, id int64, req model.UpdateLivroRequest) (*model.Livro, error)
	Delete(ctx context.Context, id int64) error
}
