package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"livraria-api/internal/domains/livro/model"
	"livraria-api/internal/domains/livro/service"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

// Handler exposes the six catalog operations over HTTP. It holds no state of
// its own; every request is validate -> delegate -> translate.
type Handler struct {
	service service.LivroService
}

func NewHandler(service service.LivroService) *Handler {
	return &Handler{service: service}
}

// List dispatches GET /livros: requests carrying page or limit query
// parameters are the paginated listing, everything else is the full listing.
func (h *Handler) List(c *gin.Context) {
	if c.Query("page") != "" || c.Query("limit") != "" {
		h.GetPaginated(c)
		return
	}
	h.ListAll(c)
}

// ListAll - GET /livros
// An empty catalog is a 404 here; the other listings treat empty as success.
func (h *Handler) ListAll(c *gin.Context) {
	livros, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal server error",
			"details": errorDetail(err),
		})
		return
	}

	if len(livros) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No books found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": livros})
}

// GetByID - GET /livros/:id
func (h *Handler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	livro, err := h.service.GetByID(c.Request.Context(), id)
	if errors.Is(err, model.ErrLivroNaoEncontrado) {
		notFound(c)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": livro})
}

// GetByGenre - GET /livros/genero/:genero
// An empty result set is a valid outcome, never a 404.
func (h *Handler) GetByGenre(c *gin.Context) {
	livros, err := h.service.GetByGenre(c.Request.Context(), c.Param("genero"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"books": livros})
}

// GetPaginated - GET /livros?page=&limit=
// The PaginatedResult is the response body, verbatim.
func (h *Handler) GetPaginated(c *gin.Context) {
	page, errPage := positiveQueryParam(c, "page", defaultPage)
	limit, errLimit := positiveQueryParam(c, "limit", defaultLimit)
	if errPage != nil || errLimit != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parâmetros de página ou limite inválidos."})
		return
	}

	result, err := h.service.ListPaginated(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Create - POST /livros
func (h *Handler) Create(c *gin.Context) {
	var req model.CreateLivroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	livro, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro ao criar o livro"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"book": livro})
}

// Update - PUT/PATCH /livros/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	var req model.UpdateLivroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	livro, err := h.service.Update(c.Request.Context(), id, req)
	if errors.Is(err, model.ErrLivroNaoEncontrado) {
		notFound(c)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": errorDetail(err)})
		return
	}

	c.JSON(http.StatusOK, gin.H{"book": livro})
}

// Delete - DELETE /livros/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if errors.Is(err, model.ErrLivroNaoEncontrado) {
		notFound(c)
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": errorDetail(err)})
		return
	}

	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter. Non-integer ids are treated the same
// as ids that do not exist in the catalog.
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func positiveQueryParam(c *gin.Context, name string, fallback int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, fmt.Errorf("query parameter %s must be a positive integer", name)
	}
	return v, nil
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": model.ErrLivroNaoEncontrado.Detail})
}

func errorDetail(err error) string {
	var derr *model.DomainError
	if errors.As(err, &derr) {
		return derr.Detail
	}
	return err.Error()
}
