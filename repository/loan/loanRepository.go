package loanrepo

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	"github.com/TurmaJB/api-alugueBiblioteca/util/database"
)

// Repo holds the transactional steps of the loan lifecycle plus the joined
// listings. Checkout and return each run inside a single transaction owned by
// the service; the tx-scoped steps take the pgx.Tx explicitly.
type Repo interface {
	Insert(ctx context.Context, tx pgx.Tx, l *model.Loan) error
	GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Loan, error)
	Delete(ctx context.Context, tx pgx.Tx, id int64) error

	// TakeCopy decrements a book's quantidade only while it is positive;
	// reports whether a copy was actually taken.
	TakeCopy(ctx context.Context, tx pgx.Tx, livroID int64) (bool, error)
	// ReturnCopy increments quantidade; reports whether the book row exists.
	ReturnCopy(ctx context.Context, tx pgx.Tx, livroID int64) (bool, error)

	ListByUser(ctx context.Context, usuarioID int64) ([]model.LoanWithBook, error)
	ListDetailed(ctx context.Context) ([]model.LoanDetails, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Insert(ctx context.Context, tx pgx.Tx, l *model.Loan) error {
	const q = `
		INSERT INTO emprestimos (usuario_id, livro_id, data_vencimento)
		VALUES ($1,$2,$3)
		RETURNING id, renovacoes, created_at, updated_at`
	return tx.QueryRow(ctx, q, l.UsuarioID, l.LivroID, l.DataVencimento).
		Scan(&l.ID, &l.Renovacoes, &l.CreatedAt, &l.UpdatedAt)
}

func (r *repo) GetForUpdate(ctx context.Context, tx pgx.Tx, id int64) (*model.Loan, error) {
	const q = `
		SELECT id, usuario_id, livro_id, data_vencimento, renovacoes, created_at, updated_at
		FROM emprestimos
		WHERE id = $1
		FOR UPDATE`
	l := &model.Loan{}
	err := tx.QueryRow(ctx, q, id).Scan(
		&l.ID, &l.UsuarioID, &l.LivroID, &l.DataVencimento,
		&l.Renovacoes, &l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *repo) Delete(ctx context.Context, tx pgx.Tx, id int64) error {
	const q = `DELETE FROM emprestimos WHERE id = $1`
	_, err := tx.Exec(ctx, q, id)
	return err
}

func (r *repo) TakeCopy(ctx context.Context, tx pgx.Tx, livroID int64) (bool, error) {
	// Guard in the predicate: quantidade never goes negative, even with
	// concurrent checkouts of the last copy.
	const q = `
		UPDATE livros
		SET quantidade = quantidade - 1,
			updated_at = now()
		WHERE id = $1
		AND quantidade > 0`
	tag, err := tx.Exec(ctx, q, livroID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) ReturnCopy(ctx context.Context, tx pgx.Tx, livroID int64) (bool, error) {
	const q = `
		UPDATE livros
		SET quantidade = quantidade + 1,
			updated_at = now()
		WHERE id = $1`
	tag, err := tx.Exec(ctx, q, livroID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *repo) ListByUser(ctx context.Context, usuarioID int64) ([]model.LoanWithBook, error) {
	const q = `
		SELECT
			e.id, e.usuario_id, e.livro_id, e.data_vencimento, e.renovacoes,
			e.created_at, e.updated_at,
			l.id, l.titulo, l.autor, l.quantidade, l.editora, l.assunto,
			l.faixa_etaria, l.created_at, l.updated_at
		FROM emprestimos e
		JOIN livros l ON l.id = e.livro_id
		WHERE e.usuario_id = $1
		ORDER BY e.id`
	rows, err := r.db.Pool.Query(ctx, q, usuarioID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.LoanWithBook, 0)
	for rows.Next() {
		var lw model.LoanWithBook
		if err := rows.Scan(
			&lw.ID, &lw.UsuarioID, &lw.LivroID, &lw.DataVencimento, &lw.Renovacoes,
			&lw.CreatedAt, &lw.UpdatedAt,
			&lw.Livro.ID, &lw.Livro.Titulo, &lw.Livro.Autor, &lw.Livro.Quantidade,
			&lw.Livro.Editora, &lw.Livro.Assunto, &lw.Livro.FaixaEtaria,
			&lw.Livro.CreatedAt, &lw.Livro.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, lw)
	}
	return out, rows.Err()
}

func (r *repo) ListDetailed(ctx context.Context) ([]model.LoanDetails, error) {
	const q = `
		SELECT
			e.id, e.usuario_id, e.livro_id, e.data_vencimento, e.renovacoes,
			e.created_at, e.updated_at,
			u.nome, u.email,
			l.titulo, l.autor
		FROM emprestimos e
		JOIN usuarios u ON u.id = e.usuario_id
		JOIN livros l ON l.id = e.livro_id
		ORDER BY e.id`
	rows, err := r.db.Pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.LoanDetails, 0)
	for rows.Next() {
		var ld model.LoanDetails
		if err := rows.Scan(
			&ld.ID, &ld.UsuarioID, &ld.LivroID, &ld.DataVencimento, &ld.Renovacoes,
			&ld.CreatedAt, &ld.UpdatedAt,
			&ld.Usuario.Nome, &ld.Usuario.Email,
			&ld.Livro.Titulo, &ld.Livro.Autor,
		); err != nil {
			return nil, err
		}
		out = append(out, ld)
	}
	return out, rows.Err()
}
