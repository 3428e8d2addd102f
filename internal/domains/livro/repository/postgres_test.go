package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"livraria-api/internal/domains/livro/model"
)

func TestBuildUpdateSet(t *testing.T) {
	titulo := "Livro B"
	genero := "Terror"
	ano := 2005

	t.Run("no fields yields an empty clause", func(t *testing.T) {
		set, args := buildUpdateSet(model.UpdateLivroRequest{})

		assert.Empty(t, set)
		assert.Empty(t, args)
	})

	t.Run("single field", func(t *testing.T) {
		set, args := buildUpdateSet(model.UpdateLivroRequest{Titulo: &titulo})

		assert.Equal(t, "titulo = $1", set)
		assert.Equal(t, []interface{}{"Livro B"}, args)
	})

	t.Run("placeholders follow argument order", func(t *testing.T) {
		set, args := buildUpdateSet(model.UpdateLivroRequest{
			Titulo:        &titulo,
			Genero:        &genero,
			AnoPublicacao: &ano,
		})

		assert.Equal(t, "titulo = $1, genero = $2, ano_publicacao = $3", set)
		assert.Equal(t, []interface{}{"Livro B", "Terror", 2005}, args)
	})
}
