package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/TurmaJB/api-alugueBiblioteca/app/echoServer"
	bookctrl "github.com/TurmaJB/api-alugueBiblioteca/app/echoServer/controller/book"
	loanctrl "github.com/TurmaJB/api-alugueBiblioteca/app/echoServer/controller/loan"
	userctrl "github.com/TurmaJB/api-alugueBiblioteca/app/echoServer/controller/user"
	"github.com/TurmaJB/api-alugueBiblioteca/app/echoServer/validation"
	"github.com/TurmaJB/api-alugueBiblioteca/config"
	bookrepo "github.com/TurmaJB/api-alugueBiblioteca/repository/book"
	loanrepo "github.com/TurmaJB/api-alugueBiblioteca/repository/loan"
	userrepo "github.com/TurmaJB/api-alugueBiblioteca/repository/user"
	booksvc "github.com/TurmaJB/api-alugueBiblioteca/service/book"
	loansvc "github.com/TurmaJB/api-alugueBiblioteca/service/loan"
	usersvc "github.com/TurmaJB/api-alugueBiblioteca/service/user"
	"github.com/TurmaJB/api-alugueBiblioteca/util/database"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	db, err := database.New(ctx, cfg.DatabaseURL())
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Sync(ctx); err != nil {
		log.Error("schema sync failed", "err", err)
		os.Exit(1)
	}
	log.Info("database ready", "host", cfg.DBHost, "name", cfg.DBName)

	// repos
	ur := userrepo.New(db)
	br := bookrepo.New(db)
	lr := loanrepo.New(db)

	// services
	us := usersvc.New(ur, cfg.JWTSecret)
	bs := booksvc.New(br)
	ls := loansvc.New(db.Pool, lr, ur, br)

	// controllers
	v := validator.New()
	userC := &userctrl.Controller{Svc: us, V: v, Log: log}
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	loanC := &loanctrl.Controller{Svc: ls, V: v, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = echoServer.JSONSerializer{}
	e.Validator = validation.New()
	echoServer.RegisterMiddlewares(e)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	echoServer.Register(e, echoServer.C{
		User: userC,
		Book: bookC,
		Loan: loanC,
	})

	log.Info("starting server", "port", cfg.Port, "env", cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
