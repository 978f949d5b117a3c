package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/TurmaJB/api-alugueBiblioteca/model"
	usersvc "github.com/TurmaJB/api-alugueBiblioteca/service/user"
)

type Controller struct {
	Svc usersvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// POST /registrar
func (ct *Controller) Register(c echo.Context) error {
	var req model.RegisterReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "corpo da requisição inválido"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "nome, email e senha são obrigatórios"})
	}

	u, err := ct.Svc.Register(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usersvc.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"erro": "e-mail já cadastrado"})
		}
		ct.Log.Error("register failed", "err", err, "path", c.Path())
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "não foi possível registrar o usuário"})
	}
	return c.JSON(http.StatusCreated, u)
}

// POST /login
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "corpo da requisição inválido"})
	}
	if err := ct.V.Struct(req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "email e senha são obrigatórios"})
	}

	u, token, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, usersvc.ErrInvalidCreds) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"erro": "Credenciais inválidas"})
		}
		ct.Log.Error("login failed", "err", err, "path", c.Path())
		return c.JSON(http.StatusBadRequest, echo.Map{"erro": "não foi possível efetuar o login"})
	}

	c.Response().Header().Set("X-Auth-Token", token)
	return c.JSON(http.StatusOK, u)
}
