package bookrepo

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	"github.com/TurmaJB/api-alugueBiblioteca/util/database"
)

const tableLivros = "livros"

var (
	dialect  = goqu.Dialect("postgres")
	bookCols = []any{
		"id", "titulo", "autor", "quantidade", "editora", "assunto",
		"faixa_etaria", "created_at", "updated_at",
	}
)

type Repo interface {
	Create(ctx context.Context, b *model.Book) error
	List(ctx context.Context) ([]model.Book, error)

	// FindByKey resolves a book by its descriptive tuple. When several rows
	// match, the lowest id wins. Missing book surfaces as pgx.ErrNoRows.
	FindByKey(ctx context.Context, key model.BookKey) (*model.Book, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, b *model.Book) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO livros(titulo, autor, quantidade, editora, assunto, faixa_etaria)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at, updated_at`,
		b.Titulo, b.Autor, b.Quantidade, b.Editora, b.Assunto, string(b.FaixaEtaria),
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *repo) List(ctx context.Context) ([]model.Book, error) {
	sql, args, err := dialect.From(tableLivros).
		Prepared(true).
		Select(bookCols...).
		Order(goqu.I("id").Asc()).
		ToSQL()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Book, 0)
	for rows.Next() {
		var b model.Book
		if err := rows.Scan(
			&b.ID, &b.Titulo, &b.Autor, &b.Quantidade, &b.Editora,
			&b.Assunto, &b.FaixaEtaria, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *repo) FindByKey(ctx context.Context, key model.BookKey) (*model.Book, error) {
	sql, args, err := dialect.From(tableLivros).
		Prepared(true).
		Select(bookCols...).
		Where(goqu.Ex{
			"titulo":       key.Titulo,
			"autor":        key.Autor,
			"editora":      key.Editora,
			"assunto":      key.Assunto,
			"faixa_etaria": string(key.FaixaEtaria),
		}).
		Order(goqu.I("id").Asc()).
		Limit(1).
		ToSQL()
	if err != nil {
		return nil, err
	}

	b := &model.Book{}
	err = r.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&b.ID, &b.Titulo, &b.Autor, &b.Quantidade, &b.Editora,
		&b.Assunto, &b.FaixaEtaria, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}
