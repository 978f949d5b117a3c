package loan

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	loansvc "github.com/TurmaJB/api-alugueBiblioteca/service/loan"
)

type Controller struct {
	Svc loansvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /alugar
func (h *Controller) Alugar(c echo.Context) error { return h.checkout(c) }

// POST /renovar runs the same checkout flow as /alugar: a renewal is a fresh
// loan of the same book.
func (h *Controller) Renovar(c echo.Context) error { return h.checkout(c) }

func (h *Controller) checkout(c echo.Context) error {
	var req CheckoutReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "corpo da requisição inválido"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"erro": "usuarioId, titulo, autor, editora, assunto e faixaEtaria são obrigatórios",
		})
	}

	key := model.BookKey{
		Titulo:      req.Titulo,
		Autor:       req.Autor,
		Editora:     req.Editora,
		Assunto:     req.Assunto,
		FaixaEtaria: model.FaixaEtaria(req.FaixaEtaria),
	}
	l, err := h.Svc.Checkout(c.Request().Context(), req.UsuarioID, key)
	if err != nil {
		switch loansvc.Code(err) {
		case loansvc.ErrUnavailable:
			return c.JSON(http.StatusBadRequest, echo.Map{
				"erro": "Usuário ou livro inválido, ou livro não disponível",
			})
		default:
			h.Log.Error("checkout failed", "err", err, "path", c.Path())
			return c.JSON(http.StatusBadRequest, echo.Map{"erro": "não foi possível alugar o livro"})
		}
	}
	return c.JSON(http.StatusCreated, l)
}

// DELETE /devolver
func (h *Controller) Devolver(c echo.Context) error {
	var req ReturnReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "corpo da requisição inválido"})
	}
	if err := h.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "emprestimoId é obrigatório"})
	}

	if err := h.Svc.Return(c.Request().Context(), req.EmprestimoID); err != nil {
		switch loansvc.Code(err) {
		case loansvc.ErrLoanNotFound:
			return c.JSON(http.StatusBadRequest, echo.Map{"erro": "ID de empréstimo inválido"})
		case loansvc.ErrBookNotFound:
			return c.JSON(http.StatusBadRequest, echo.Map{"erro": "Livro não encontrado"})
		default:
			h.Log.Error("return failed", "err", err, "path", c.Path())
			return c.JSON(http.StatusBadRequest, echo.Map{"erro": "não foi possível devolver o livro"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"mensagem": "Livro devolvido com sucesso"})
}

// GET /usuario/:usuarioId/emprestimos
func (h *Controller) ListByUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("usuarioId"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "usuarioId inválido"})
	}

	rows, err := h.Svc.ListByUser(c.Request().Context(), id)
	if err != nil {
		h.Log.Error("list loans by user failed", "err", err, "path", c.Path())
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "não foi possível listar os empréstimos"})
	}
	return c.JSON(http.StatusOK, rows)
}

// GET /livros-alugados
func (h *Controller) ListDetailed(c echo.Context) error {
	rows, err := h.Svc.ListDetailed(c.Request().Context())
	if err != nil {
		h.Log.Error("list loans failed", "err", err, "path", c.Path())
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "não foi possível listar os livros alugados"})
	}
	return c.JSON(http.StatusOK, rows)
}
