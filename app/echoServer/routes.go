package echoServer

import (
	"github.com/labstack/echo/v4"

	"github.com/TurmaJB/api-alugueBiblioteca/app/echoServer/controller/book"
	"github.com/TurmaJB/api-alugueBiblioteca/app/echoServer/controller/loan"
	"github.com/TurmaJB/api-alugueBiblioteca/app/echoServer/controller/user"
)

type C struct {
	User *user.Controller
	Book *book.Controller
	Loan *loan.Controller
}

func Register(e *echo.Echo, c C) {
	// Catalog
	e.POST("/livros", c.Book.Create)
	e.GET("/livros", c.Book.List)

	// Users
	e.POST("/registrar", c.User.Register)
	e.POST("/login", c.User.Login)

	// Loans
	e.POST("/alugar", c.Loan.Alugar)
	e.POST("/renovar", c.Loan.Renovar)
	e.DELETE("/devolver", c.Loan.Devolver)
	e.GET("/usuario/:usuarioId/emprestimos", c.Loan.ListByUser)
	e.GET("/livros-alugados", c.Loan.ListDetailed)
}
