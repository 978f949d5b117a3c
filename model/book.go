package model

import "time"

// FaixaEtaria is the age-rating classification of a book.
type FaixaEtaria string

const (
	FaixaLivre          FaixaEtaria = "Livre"
	FaixaInfantil       FaixaEtaria = "Infantil"
	FaixaInfantojuvenil FaixaEtaria = "Infantojuvenil"
	FaixaAdulto         FaixaEtaria = "Adulto"
)

func (f FaixaEtaria) Valid() bool {
	switch f {
	case FaixaLivre, FaixaInfantil, FaixaInfantojuvenil, FaixaAdulto:
		return true
	}
	return false
}

type Book struct {
	ID          int64       `json:"id"`
	Titulo      string      `json:"titulo"`
	Autor       string      `json:"autor"`
	Quantidade  int64       `json:"quantidade"`
	Editora     string      `json:"editora"`
	Assunto     string      `json:"assunto"`
	FaixaEtaria FaixaEtaria `json:"faixaEtaria"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// BookKey is the descriptive tuple used to locate a book for checkout.
// Two rows that agree on all five fields are indistinguishable here; the
// lowest id wins.
type BookKey struct {
	Titulo      string
	Autor       string
	Editora     string
	Assunto     string
	FaixaEtaria FaixaEtaria
}
