package book

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	booksvc "github.com/TurmaJB/api-alugueBiblioteca/service/book"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /livros
func (h *Controller) Create(c echo.Context) error {
	var req CreateBookReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "corpo da requisição inválido"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"erro": "titulo, autor, quantidade, editora, assunto e faixaEtaria são obrigatórios",
		})
	}

	b := &model.Book{
		Titulo:      req.Titulo,
		Autor:       req.Autor,
		Quantidade:  *req.Quantidade,
		Editora:     req.Editora,
		Assunto:     req.Assunto,
		FaixaEtaria: model.FaixaEtaria(req.FaixaEtaria),
	}
	if err := h.Svc.Create(c.Request().Context(), b); err != nil {
		h.Log.Error("book create failed", "err", err, "path", c.Path())
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "não foi possível cadastrar o livro"})
	}
	return c.JSON(http.StatusCreated, b)
}

// GET /livros
func (h *Controller) List(c echo.Context) error {
	livros, err := h.Svc.List(c.Request().Context())
	if err != nil {
		h.Log.Error("book list failed", "err", err, "path", c.Path())
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "não foi possível listar os livros"})
	}
	return c.JSON(http.StatusOK, livros)
}
