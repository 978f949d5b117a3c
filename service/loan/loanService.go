package loansvc

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	loanrepo "github.com/TurmaJB/api-alugueBiblioteca/repository/loan"
)

// errors used by controllers

type ErrCode string

const (
	// ErrUnavailable covers all checkout preconditions: unknown user, no book
	// matching the descriptive key, or no copies left. The API reports them
	// with a single message.
	ErrUnavailable  ErrCode = "UNAVAILABLE"
	ErrLoanNotFound ErrCode = "LOAN_NOT_FOUND"
	ErrBookNotFound ErrCode = "BOOK_NOT_FOUND"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts the error code, "" for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

const loanTerm = 7 * 24 * time.Hour

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

type UserRepo interface {
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type BookRepo interface {
	FindByKey(ctx context.Context, key model.BookKey) (*model.Book, error)
}

type Service interface {
	// Checkout creates a loan due in seven days and takes one copy of the
	// book resolved by the descriptive key. /alugar and /renovar both run
	// this; a renewal is a fresh checkout and renovacoes stays 0.
	Checkout(ctx context.Context, usuarioID int64, key model.BookKey) (*model.Loan, error)

	// Return deletes the loan and gives the copy back.
	Return(ctx context.Context, emprestimoID int64) error

	ListByUser(ctx context.Context, usuarioID int64) ([]model.LoanWithBook, error)
	ListDetailed(ctx context.Context) ([]model.LoanDetails, error)
}

type service struct {
	db    TxBeginner
	r     loanrepo.Repo
	users UserRepo
	books BookRepo
}

func New(db TxBeginner, r loanrepo.Repo, users UserRepo, books BookRepo) Service {
	return &service{db: db, r: r, users: users, books: books}
}

func (s *service) Checkout(ctx context.Context, usuarioID int64, key model.BookKey) (*model.Loan, error) {
	if _, err := s.users.ByID(ctx, usuarioID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrUnavailable)
		}
		return nil, err
	}

	livro, err := s.books.FindByKey(ctx, key)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, makeErr(ErrUnavailable)
		}
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	taken, err := s.r.TakeCopy(ctx, tx, livro.ID)
	if err != nil {
		return nil, err
	}
	if !taken {
		err = makeErr(ErrUnavailable)
		return nil, err
	}

	l := &model.Loan{
		UsuarioID:      usuarioID,
		LivroID:        livro.ID,
		DataVencimento: time.Now().Add(loanTerm),
	}
	if err = s.r.Insert(ctx, tx, l); err != nil {
		return nil, err
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) Return(ctx context.Context, emprestimoID int64) (err error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	l, err := s.r.GetForUpdate(ctx, tx, emprestimoID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return makeErr(ErrLoanNotFound)
		}
		return err
	}

	returned, err := s.r.ReturnCopy(ctx, tx, l.LivroID)
	if err != nil {
		return err
	}
	if !returned {
		// Dangling livro_id; reported as a request error, not a fault.
		err = makeErr(ErrBookNotFound)
		return err
	}

	if err = s.r.Delete(ctx, tx, l.ID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (s *service) ListByUser(ctx context.Context, usuarioID int64) ([]model.LoanWithBook, error) {
	return s.r.ListByUser(ctx, usuarioID)
}

func (s *service) ListDetailed(ctx context.Context) ([]model.LoanDetails, error) {
	return s.r.ListDetailed(ctx)
}
