package book

type CreateBookReq struct {
	Titulo      string `json:"titulo" validate:"required"`
	Autor       string `json:"autor" validate:"required"`
	Quantidade  *int64 `json:"quantidade" validate:"required,gte=0"`
	Editora     string `json:"editora" validate:"required"`
	Assunto     string `json:"assunto" validate:"required"`
	FaixaEtaria string `json:"faixaEtaria" validate:"required,oneof=Livre Infantil Infantojuvenil Adulto"`
}
