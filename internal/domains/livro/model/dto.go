package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateLivroRequest is the payload for creating a livro. Only the title is
// mandatory; the remaining fields default to their zero values.
type CreateLivroRequest struct {
	Titulo        string `json:"titulo"`
	Autor         string `json:"autor"`
	Genero        string `json:"genero"`
	AnoPublicacao int    `json:"ano_publicacao"`
}

func (r CreateLivroRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Titulo,
			validation.Required.Error("Título é obrigatório"),
		),
	)
}

// UpdateLivroRequest is a partial update: nil fields keep their stored value.
type UpdateLivroRequest struct {
	Titulo        *string `json:"titulo"`
	Autor         *string `json:"autor"`
	Genero        *string `json:"genero"`
	AnoPublicacao *int    `json:"ano_publicacao"`
}

func (r UpdateLivroRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Titulo,
			validation.NilOrNotEmpty.Error("Título é obrigatório"),
		),
	)
}

// Empty reports whether the update carries no fields at all.
func (r UpdateLivroRequest) Empty() bool {
	return r.Titulo == nil && r.Autor == nil && r.Genero == nil && r.AnoPublicacao == nil
}
