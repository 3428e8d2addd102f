package model

// ErrorKind classifies domain failures so handlers can map them to
// status codes without probing message strings.
type ErrorKind string

const (
	KindValidation ErrorKind = "validation"
	KindNotFound   ErrorKind = "not_found"
	KindStore      ErrorKind = "store"
)

// DomainError carries the failure class plus the detail surfaced to clients.
type DomainError struct {
	Kind   ErrorKind
	Detail string
	Err    error
}

func (e *DomainError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return string(e.Kind)
}

func (e *DomainError) Unwrap() error { return e.Err }

// ErrLivroNaoEncontrado is the absent-entity error. Its detail is the fixed
// client-facing message used by every not-found response except the empty
// full listing.
var ErrLivroNaoEncontrado = &DomainError{Kind: KindNotFound, Detail: "Livro não encontrado"}

// StoreFailure wraps an infrastructure error raised by the persistence
// layer, keeping the underlying message as the client-visible detail.
func StoreFailure(err error) *DomainError {
	return &DomainError{Kind: KindStore, Detail: err.Error(), Err: err}
}
