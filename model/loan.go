package model

import "time"

// Loan links a user to a borrowed book. A loan row exists strictly between
// checkout and return; returning deletes it.
type Loan struct {
	ID             int64     `json:"id"`
	UsuarioID      int64     `json:"usuarioId"`
	LivroID        int64     `json:"livroId"`
	DataVencimento time.Time `json:"dataVencimento"`
	Renovacoes     int64     `json:"renovacoes"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// LoanWithBook is a loan joined with its book, as listed per user.
type LoanWithBook struct {
	Loan
	Livro Book `json:"livro"`
}

type UserSummary struct {
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type BookSummary struct {
	Titulo string `json:"titulo"`
	Autor  string `json:"autor"`
}

// LoanDetails is a loan joined with its user and book, as listed by
// /livros-alugados.
type LoanDetails struct {
	Loan
	Usuario UserSummary `json:"usuario"`
	Livro   BookSummary `json:"livro"`
}
