package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"livraria-api/internal/domains/livro/model"
)

const livroColumns = "id, titulo, autor, genero, ano_publicacao"

// postgresRepository - raw SQL over pgxpool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) LivroRepository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Livro, error) {
	query := fmt.Sprintf("SELECT %s FROM livros ORDER BY id", livroColumns)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, model.StoreFailure(err)
	}
	defer rows.Close()

	return scanLivros(rows)
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Livro, error) {
	query := fmt.Sprintf("SELECT %s FROM livros WHERE id = $1", livroColumns)

	var l model.Livro
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&l.ID, &l.Titulo, &l.Autor, &l.Genero, &l.AnoPublicacao)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrLivroNaoEncontrado
	}
	if err != nil {
		return nil, model.StoreFailure(err)
	}

	return &l, nil
}

func (r *postgresRepository) GetByGenre(ctx context.Context, genero string) ([]model.Livro, error) {
	query := fmt.Sprintf("SELECT %s FROM livros WHERE genero = $1 ORDER BY id", livroColumns)

	rows, err := r.pool.Query(ctx, query, genero)
	if err != nil {
		return nil, model.StoreFailure(err)
	}
	defer rows.Close()

	return scanLivros(rows)
}

func (r *postgresRepository) GetAllPaginated(ctx context.Context, page, limit int) (*model.PaginatedResult, error) {
	var total int
	if err := r.pool.QueryRow(ctx, "SELECT COUNT(*) FROM livros").Scan(&total); err != nil {
		return nil, model.StoreFailure(err)
	}

	query := fmt.Sprintf("SELECT %s FROM livros ORDER BY id LIMIT $1 OFFSET $2", livroColumns)
	rows, err := r.pool.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, model.StoreFailure(err)
	}
	defer rows.Close()

	items, err := scanLivros(rows)
	if err != nil {
		return nil, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = (total + limit - 1) / limit
	}

	return &model.PaginatedResult{
		Items:       items,
		TotalItems:  total,
		TotalPages:  totalPages,
		CurrentPage: page,
		PageSize:    limit,
	}, nil
}

func (r *postgresRepository) Create(ctx context.Context, req model.CreateLivroRequest) (*model.Livro, error) {
	query := fmt.Sprintf(`
		INSERT INTO livros (titulo, autor, genero, ano_publicacao)
		VALUES ($1, $2, $3, $4)
		RETURNING %s`, livroColumns)

	var l model.Livro
	err := r.pool.QueryRow(ctx, query, req.Titulo, req.Autor, req.Genero, req.AnoPublicacao).
		Scan(&l.ID, &l.Titulo, &l.Autor, &l.Genero, &l.AnoPublicacao)
	if err != nil {
		return nil, model.StoreFailure(err)
	}

	return &l, nil
}

func (r *postgresRepository) Update(ctx context.Context, id int64, req model.UpdateLivroRequest) (int64, error) {
	set, args := buildUpdateSet(req)
	if set == "" {
		return 0, nil
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE livros SET %s WHERE id = $%d", set, len(args))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, model.StoreFailure(err)
	}

	return tag.RowsAffected(), nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM livros WHERE id = $1", id)
	if err != nil {
		return 0, model.StoreFailure(err)
	}

	return tag.RowsAffected(), nil
}

// buildUpdateSet turns the non-nil fields of a partial update into a SET
// clause with positional placeholders plus the matching argument list.
func buildUpdateSet(req model.UpdateLivroRequest) (string, []interface{}) {
	sets := make([]string, 0, 4)
	args := make([]interface{}, 0, 4)

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if req.Titulo != nil {
		add("titulo", *req.Titulo)
	}
	if req.Autor != nil {
		add("autor", *req.Autor)
	}
	if req.Genero != nil {
		add("genero", *req.Genero)
	}
	if req.AnoPublicacao != nil {
		add("ano_publicacao", *req.AnoPublicacao)
	}

	return strings.Join(sets, ", "), args
}

func scanLivros(rows pgx.Rows) ([]model.Livro, error) {
	livros := make([]model.Livro, 0)
	for rows.Next() {
		var l model.Livro
		if err := rows.Scan(&l.ID, &l.Titulo, &l.Autor, &l.Genero, &l.AnoPublicacao); err != nil {
			return nil, model.StoreFailure(err)
		}
		livros = append(livros, l)
	}
	if err := rows.Err(); err != nil {
		return nil, model.StoreFailure(err)
	}

	return livros, nil
}
