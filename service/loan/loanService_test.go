package loansvc_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	loansvc "github.com/TurmaJB/api-alugueBiblioteca/service/loan"
)

// fakeTx satisfies pgx.Tx for the service's begin/commit/rollback flow; the
// repo mocks never touch it beyond identity.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
}

func (t *fakeTx) Commit(ctx context.Context) error   { t.committed = true; return nil }
func (t *fakeTx) Rollback(ctx context.Context) error { t.rolledBack = true; return nil }

type beginnerMock struct {
	tx     *fakeTx
	begun  int
}

func (b *beginnerMock) Begin(ctx context.Context) (pgx.Tx, error) {
	b.begun++
	return b.tx, nil
}

type userRepoMock struct {
	byIDFn func(ctx context.Context, id int64) (*model.User, error)
}

func (m *userRepoMock) ByID(ctx context.Context, id int64) (*model.User, error) {
	return m.byIDFn(ctx, id)
}

type bookRepoMock struct {
	findByKeyFn func(ctx context.Context, key model.BookKey) (*model.Book, error)
}

func (m *bookRepoMock) FindByKey(ctx context.Context, key model.BookKey) (*model.Book, error) {
	return m.findByKeyFn(ctx, key)
}

type loanRepoMock struct {
	insertFn       func(ctx context.Context, tx pgx.Tx, l *model.Loan) error
	getForUpdateFn func(ctx context.Context, tx pgx.Tx, id int64) (*model.Loan, error)
	deleteFn       func(ctx context.Context, tx pgx.Tx, id int64) error
	takeCopyFn     func(ctx context.Context, tx pgx.Tx, livroID int64) (bool, error)
	returnCopyFn   func(ctx context.Context, tx pgx.Tx, livroID int64) (bool, error)
	listByUserFn   func(ctx context.Context, usuarioID int64) ([]model.LoanWithBook, error)
	listDetailedFn func(ctx context.Context) ([]model.LoanDetails, error)
}

func (m *loanRepoMock) Insert(ctx context.Context, tx pgx.Tx, l *model.Loan) error {
	return m.insertFn(ctx, tx, l)
}
func (m *loanRepoMock) GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Loan, error) {
	return m.getForUpdateFn(ctx, tx, id)
}
func (m *loanRepoMock) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	return m.deleteFn(ctx, tx, id)
}
func (m *loanRepoMock) TakeCopy(ctx context.Context, tx pgx.Tx, livroID int64) (bool, error) {
	return m.takeCopyFn(ctx, tx, livroID)
}
func (m *loanRepoMock) ReturnCopy(ctx context.Context, tx pgx.Tx, livroID int64) (bool, error) {
	return m.returnCopyFn(ctx, tx, livroID)
}
func (m *loanRepoMock) ListByUser(ctx context.Context, usuarioID int64) ([]model.LoanWithBook, error) {
	return m.listByUserFn(ctx, usuarioID)
}
func (m *loanRepoMock) ListDetailed(ctx context.Context) ([]model.LoanDetails, error) {
	return m.listDetailedFn(ctx)
}

var testKey = model.BookKey{
	Titulo:      "A",
	Autor:       "X",
	Editora:     "Ed",
	Assunto:     "Assunto",
	FaixaEtaria: model.FaixaLivre,
}

func existingUser(id int64) *userRepoMock {
	return &userRepoMock{
		byIDFn: func(ctx context.Context, got int64) (*model.User, error) {
			if got != id {
				return nil, pgx.ErrNoRows
			}
			return &model.User{ID: id, Nome: "João"}, nil
		},
	}
}

func existingBook(id int64) *bookRepoMock {
	return &bookRepoMock{
		findByKeyFn: func(ctx context.Context, key model.BookKey) (*model.Book, error) {
			return &model.Book{ID: id, Titulo: key.Titulo, Autor: key.Autor, Quantidade: 1}, nil
		},
	}
}

func TestCheckout_Success(t *testing.T) {
	tx := &fakeTx{}
	db := &beginnerMock{tx: tx}
	lr := &loanRepoMock{
		takeCopyFn: func(ctx context.Context, _ pgx.Tx, livroID int64) (bool, error) {
			require.Equal(t, int64(3), livroID)
			return true, nil
		},
		insertFn: func(ctx context.Context, _ pgx.Tx, l *model.Loan) error {
			l.ID = 11
			return nil
		},
	}
	svc := loansvc.New(db, lr, existingUser(1), existingBook(3))

	before := time.Now()
	l, err := svc.Checkout(context.Background(), 1, testKey)
	require.NoError(t, err)
	require.Equal(t, int64(11), l.ID)
	require.Equal(t, int64(1), l.UsuarioID)
	require.Equal(t, int64(3), l.LivroID)
	require.Equal(t, int64(0), l.Renovacoes)

	due := before.Add(7 * 24 * time.Hour)
	require.WithinDuration(t, due, l.DataVencimento, time.Minute)

	require.True(t, tx.committed)
	require.False(t, tx.rolledBack)
}

func TestCheckout_UnknownUser(t *testing.T) {
	db := &beginnerMock{tx: &fakeTx{}}
	svc := loansvc.New(db, &loanRepoMock{}, existingUser(1), existingBook(3))

	_, err := svc.Checkout(context.Background(), 99, testKey)
	require.Equal(t, loansvc.ErrUnavailable, loansvc.Code(err))
	require.Zero(t, db.begun, "no transaction should be opened")
}

func TestCheckout_UnknownBook(t *testing.T) {
	db := &beginnerMock{tx: &fakeTx{}}
	br := &bookRepoMock{
		findByKeyFn: func(ctx context.Context, key model.BookKey) (*model.Book, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := loansvc.New(db, &loanRepoMock{}, existingUser(1), br)

	_, err := svc.Checkout(context.Background(), 1, testKey)
	require.Equal(t, loansvc.ErrUnavailable, loansvc.Code(err))
	require.Zero(t, db.begun)
}

func TestCheckout_NoCopies(t *testing.T) {
	tx := &fakeTx{}
	db := &beginnerMock{tx: tx}
	inserted := false
	lr := &loanRepoMock{
		takeCopyFn: func(ctx context.Context, _ pgx.Tx, livroID int64) (bool, error) {
			return false, nil
		},
		insertFn: func(ctx context.Context, _ pgx.Tx, l *model.Loan) error {
			inserted = true
			return nil
		},
	}
	svc := loansvc.New(db, lr, existingUser(1), existingBook(3))

	_, err := svc.Checkout(context.Background(), 1, testKey)
	require.Equal(t, loansvc.ErrUnavailable, loansvc.Code(err))
	require.False(t, inserted)
	require.True(t, tx.rolledBack)
	require.False(t, tx.committed)
}

func TestReturn_Success(t *testing.T) {
	tx := &fakeTx{}
	db := &beginnerMock{tx: tx}
	deleted := int64(0)
	lr := &loanRepoMock{
		getForUpdateFn: func(ctx context.Context, _ pgx.Tx, id int64) (*model.Loan, error) {
			require.Equal(t, int64(11), id)
			return &model.Loan{ID: 11, UsuarioID: 1, LivroID: 3}, nil
		},
		returnCopyFn: func(ctx context.Context, _ pgx.Tx, livroID int64) (bool, error) {
			require.Equal(t, int64(3), livroID)
			return true, nil
		},
		deleteFn: func(ctx context.Context, _ pgx.Tx, id int64) error {
			deleted = id
			return nil
		},
	}
	svc := loansvc.New(db, lr, existingUser(1), existingBook(3))

	require.NoError(t, svc.Return(context.Background(), 11))
	require.Equal(t, int64(11), deleted)
	require.True(t, tx.committed)
}

func TestReturn_UnknownLoan(t *testing.T) {
	tx := &fakeTx{}
	db := &beginnerMock{tx: tx}
	lr := &loanRepoMock{
		getForUpdateFn: func(ctx context.Context, _ pgx.Tx, id int64) (*model.Loan, error) {
			return nil, pgx.ErrNoRows
		},
	}
	svc := loansvc.New(db, lr, existingUser(1), existingBook(3))

	err := svc.Return(context.Background(), 404)
	require.Equal(t, loansvc.ErrLoanNotFound, loansvc.Code(err))
	require.True(t, tx.rolledBack)
}

func TestReturn_DanglingBook(t *testing.T) {
	tx := &fakeTx{}
	db := &beginnerMock{tx: tx}
	lr := &loanRepoMock{
		getForUpdateFn: func(ctx context.Context, _ pgx.Tx, id int64) (*model.Loan, error) {
			return &model.Loan{ID: 11, LivroID: 999}, nil
		},
		returnCopyFn: func(ctx context.Context, _ pgx.Tx, livroID int64) (bool, error) {
			return false, nil
		},
	}
	svc := loansvc.New(db, lr, existingUser(1), existingBook(3))

	err := svc.Return(context.Background(), 11)
	require.Equal(t, loansvc.ErrBookNotFound, loansvc.Code(err))
	require.True(t, tx.rolledBack)
	require.False(t, tx.committed)
}

// stateful fakes for the checkout/return round trip

type ledgerState struct {
	quantidade int64
	nextLoanID int64
	loans      map[int64]*model.Loan
}

func roundTripService(db *beginnerMock, st *ledgerState) loansvc.Service {
	lr := &loanRepoMock{
		takeCopyFn: func(ctx context.Context, _ pgx.Tx, livroID int64) (bool, error) {
			if st.quantidade <= 0 {
				return false, nil
			}
			st.quantidade--
			return true, nil
		},
		returnCopyFn: func(ctx context.Context, _ pgx.Tx, livroID int64) (bool, error) {
			st.quantidade++
			return true, nil
		},
		insertFn: func(ctx context.Context, _ pgx.Tx, l *model.Loan) error {
			st.nextLoanID++
			l.ID = st.nextLoanID
			cp := *l
			st.loans[l.ID] = &cp
			return nil
		},
		getForUpdateFn: func(ctx context.Context, _ pgx.Tx, id int64) (*model.Loan, error) {
			l, ok := st.loans[id]
			if !ok {
				return nil, pgx.ErrNoRows
			}
			return l, nil
		},
		deleteFn: func(ctx context.Context, _ pgx.Tx, id int64) error {
			delete(st.loans, id)
			return nil
		},
	}
	return loansvc.New(db, lr, existingUser(1), existingBook(3))
}

func TestCheckoutReturn_RoundTrip(t *testing.T) {
	st := &ledgerState{quantidade: 1, loans: map[int64]*model.Loan{}}
	svc := roundTripService(&beginnerMock{tx: &fakeTx{}}, st)
	ctx := context.Background()

	l, err := svc.Checkout(ctx, 1, testKey)
	require.NoError(t, err)
	require.Equal(t, int64(0), st.quantidade)

	// last copy gone, next checkout must be refused
	_, err = svc.Checkout(ctx, 1, testKey)
	require.Equal(t, loansvc.ErrUnavailable, loansvc.Code(err))
	require.Equal(t, int64(0), st.quantidade)

	require.NoError(t, svc.Return(ctx, l.ID))
	require.Equal(t, int64(1), st.quantidade)
	require.Empty(t, st.loans)

	// returning twice fails, count untouched
	err = svc.Return(ctx, l.ID)
	require.Equal(t, loansvc.ErrLoanNotFound, loansvc.Code(err))
	require.Equal(t, int64(1), st.quantidade)
}
