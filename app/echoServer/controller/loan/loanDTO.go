package loan

// CheckoutReq is the /alugar and /renovar payload. The book is addressed by
// its descriptive fields, not by id.
type CheckoutReq struct {
	UsuarioID   int64  `json:"usuarioId" validate:"required,gt=0"`
	Titulo      string `json:"titulo" validate:"required"`
	Autor       string `json:"autor" validate:"required"`
	Editora     string `json:"editora" validate:"required"`
	Assunto     string `json:"assunto" validate:"required"`
	FaixaEtaria string `json:"faixaEtaria" validate:"required,oneof=Livre Infantil Infantojuvenil Adulto"`
}

// ReturnReq is the /devolver payload.
type ReturnReq struct {
	EmprestimoID int64 `json:"emprestimoId" validate:"required,gt=0"`
}
