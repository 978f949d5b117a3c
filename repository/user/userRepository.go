package userrepo

import (
	"context"

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	"github.com/TurmaJB/api-alugueBiblioteca/util/database"
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
}

type repo struct{ db *database.DB }

func New(db *database.DB) Repo { return &repo{db} }

func (r *repo) Create(ctx context.Context, u *model.User) error {
	return r.db.Pool.QueryRow(ctx, `
		INSERT INTO usuarios(nome, email, senha_hash)
		VALUES ($1,$2,$3)
		RETURNING id, created_at, updated_at`,
		u.Nome, u.Email, u.SenhaHash,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, nome, email, senha_hash, created_at, updated_at
		FROM usuarios
		WHERE email = $1`,
		email,
	).Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	u := &model.User{}
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id, nome, email, senha_hash, created_at, updated_at
		FROM usuarios
		WHERE id = $1`,
		id,
	).Scan(&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}
