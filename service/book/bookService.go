package booksvc

import (
	"context"
	"errors"

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	bookrepo "github.com/TurmaJB/api-alugueBiblioteca/repository/book"
)

var ErrInvalidBook = errors.New("invalid book payload")

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context) ([]model.Book, error)
	FindByKey(ctx context.Context, key model.BookKey) (*model.Book, error)
}

var _ Repo = (bookrepo.Repo)(nil)

type Service interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context) ([]model.Book, error)
}

type service struct{ r Repo }

func New(r Repo) Service { return &service{r: r} }

func (s *service) Create(ctx context.Context, b *model.Book) error {
	if b.Titulo == "" || b.Autor == "" || b.Editora == "" || b.Assunto == "" {
		return ErrInvalidBook
	}
	if b.Quantidade < 0 || !b.FaixaEtaria.Valid() {
		return ErrInvalidBook
	}
	return s.r.Create(ctx, b)
}

func (s *service) List(ctx context.Context) ([]model.Book, error) { return s.r.List(ctx) }
