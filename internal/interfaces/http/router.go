package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Transactions *trade.TransactionUseCase
	Receipts     *trade.ReceiptUseCase
	Goods        *usecase.GoodUseCase
	Hunters      *usecase.HunterUseCase
	Merchants    *usecase.MerchantUseCase
	JWTSecret    string              // vacío: rutas de escritura abiertas
	StoreName    string              // backend reportado por /health
	Metrics      prometheus.Gatherer // nil: sin /metrics
	Log          zerolog.Logger
}

// NewApp crea la aplicación Fiber con recover, request id, log de acceso y errores en JSON.
func NewApp(name string, log zerolog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      name,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fe.Message})
			}
			log.Error().Err(err).Str("request_id", GetRequestID(c)).Msg("error no controlado")
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
		},
	})
	app.Use(recover.New())
	app.Use(RequestID())
	app.Use(AccessLog(log))
	return app
}

// Router registra las rutas de la API.
func Router(app fiber.Router, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Store: deps.StoreName})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{})))
	}

	// Las lecturas son públicas; las escrituras exigen un token de operador si hay secret.
	write := func(h fiber.Handler) []fiber.Handler {
		if deps.JWTSecret == "" {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleOperator), h}
	}

	tx := NewTransactionHandler(deps.Transactions, deps.Receipts, deps.Log)
	app.Post("/transactions", write(tx.Create)...)
	app.Get("/transactions", tx.List)
	app.Get("/transactions/:id", tx.GetByID)
	app.Get("/transactions/:id/receipt", tx.Receipt)
	app.Patch("/transactions/:id", write(tx.Revise)...)
	app.Delete("/transactions/:id", write(tx.Delete)...)

	// Catálogo: PATCH y DELETE aceptan también el id como ?id=.
	goods := NewGoodHandler(deps.Goods, deps.Log)
	app.Post("/goods", write(goods.Create)...)
	app.Get("/goods", goods.List)
	app.Get("/goods/:id", goods.GetByID)
	app.Patch("/goods/:id", write(goods.Update)...)
	app.Delete("/goods/:id", write(goods.Delete)...)
	app.Patch("/goods", write(goods.Update)...)
	app.Delete("/goods", write(goods.Delete)...)

	hunters := NewHunterHandler(deps.Hunters, deps.Log)
	app.Post("/hunters", write(hunters.Create)...)
	app.Get("/hunters", hunters.List)
	app.Get("/hunters/:id", hunters.GetByID)
	app.Patch("/hunters/:id", write(hunters.Update)...)
	app.Delete("/hunters/:id", write(hunters.Delete)...)
	app.Patch("/hunters", write(hunters.Update)...)
	app.Delete("/hunters", write(hunters.Delete)...)

	merchants := NewMerchantHandler(deps.Merchants, deps.Log)
	app.Post("/merchants", write(merchants.Create)...)
	app.Get("/merchants", merchants.List)
	app.Get("/merchants/:id", merchants.GetByID)
	app.Patch("/merchants/:id", write(merchants.Update)...)
	app.Delete("/merchants/:id", write(merchants.Delete)...)
	app.Patch("/merchants", write(merchants.Update)...)
	app.Delete("/merchants", write(merchants.Delete)...)
}
