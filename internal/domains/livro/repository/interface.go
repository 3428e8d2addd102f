package repository

import (
	"context"

	"livraria-api/internal/domains/livro/model"
)

// LivroRepository is the persistence contract for the livro catalog.
// Absent rows surface as model.ErrLivroNaoEncontrado; any other failure is a
// store-kind model.DomainError wrapping the driver error.
type LivroRepository interface {
	GetAll(ctx context.Context) ([]model.Livro, error)
	GetByID(ctx context.Context, id int64) (*model.Livro, error)
	GetByGenre(ctx context.Context, genero string) ([]model.Livro, error)
	GetAllPaginated(ctx context.Context, page, limit int) (*model.PaginatedResult, error)
	Create(ctx context.Context, req model.CreateLivroRequest) (*model.Livro, error)

	// Update and Delete report the number of affected rows.
	Update(ctx context.Context, id int64, req model.UpdateLivroRequest) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
