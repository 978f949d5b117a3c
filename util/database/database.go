package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct{ Pool *pgxpool.Pool }

func New(ctx context.Context, dsn string) (*DB, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	p, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, err
	}
	return &DB{Pool: p}, nil
}

func (db *DB) Close() { db.Pool.Close() }

// Sync creates the schema on startup if it does not exist yet. There is no
// migration versioning; the tables are append-only in shape.
func (db *DB) Sync(ctx context.Context) error {
	stmts := []string{
		`DO $$ BEGIN
			CREATE TYPE faixa_etaria AS ENUM ('Livre', 'Infantil', 'Infantojuvenil', 'Adulto');
		EXCEPTION WHEN duplicate_object THEN NULL;
		END $$`,
		`CREATE TABLE IF NOT EXISTS usuarios (
			id         BIGSERIAL PRIMARY KEY,
			nome       TEXT NOT NULL,
			email      TEXT NOT NULL UNIQUE,
			senha_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS livros (
			id           BIGSERIAL PRIMARY KEY,
			titulo       TEXT NOT NULL,
			autor        TEXT NOT NULL,
			quantidade   BIGINT NOT NULL CHECK (quantidade >= 0),
			editora      TEXT NOT NULL,
			assunto      TEXT NOT NULL,
			faixa_etaria faixa_etaria NOT NULL,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS emprestimos (
			id              BIGSERIAL PRIMARY KEY,
			usuario_id      BIGINT NOT NULL REFERENCES usuarios(id),
			livro_id        BIGINT NOT NULL REFERENCES livros(id),
			data_vencimento TIMESTAMPTZ NOT NULL,
			renovacoes      BIGINT NOT NULL DEFAULT 0,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE INDEX IF NOT EXISTS emprestimos_usuario_id_idx ON emprestimos (usuario_id)`,
	}
	for _, q := range stmts {
		if _, err := db.Pool.Exec(ctx, q); err != nil {
			return err
		}
	}
	return nil
}
