package model

// Livro is the catalog entity persisted in the livros table.
// The id is assigned by the database on insert and never changes.
type Livro struct {
	ID            int64  `json:"id" db:"id"`
	Titulo        string `json:"titulo" db:"titulo"`
	Autor         string `json:"autor" db:"autor"`
	Genero        string `json:"genero" db:"genero"`
	AnoPublicacao int    `json:"ano_publicacao" db:"ano_publicacao"`
}

// PaginatedResult bundles one page of livros with its paging metadata.
// It is built fresh per query and serialized verbatim as the response
// body of the paginated listing, so the JSON keys are part of the API.
type PaginatedResult struct {
	Items       []Livro `json:"items"`
	TotalItems  int     `json:"totalItems"`
	TotalPages  int     `json:"totalPages"`
	CurrentPage int     `json:"currentPage"`
	PageSize    int     `json:"pageSize"`
}
