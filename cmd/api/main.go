package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/mercado-api/internal/infrastructure/pdf"
	"github.com/jhoicas/mercado-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/mercado-api/internal/interfaces/http"
	"github.com/jhoicas/mercado-api/pkg/config"
	"github.com/jhoicas/mercado-api/pkg/logger"
	"github.com/jhoicas/mercado-api/pkg/metrics"
	"github.com/jhoicas/mercado-api/pkg/migrate"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var (
		repos    trade.Repos
		txRunner trade.TxRunner
	)
	switch cfg.Store {
	case config.StoreMemory:
		store := memory.NewStore()
		repos, txRunner = store.Repos(), store
	default:
		if cfg.DB.AutoMigrate {
			if err := runMigrations(ctx, cfg.DB); err != nil {
				log.Fatal().Err(err).Msg("migraciones")
			}
			log.Info().Msg("migraciones aplicadas")
		}
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		repos, txRunner = postgres.NewRepos(pool), postgres.NewTxRunner(pool)
	}

	var gatherer prometheus.Gatherer
	var tradeMetrics *metrics.TradeMetrics
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		tradeMetrics = metrics.NewTradeMetrics(reg)
		gatherer = reg
	}

	transactionUC := trade.NewTransactionUseCase(txRunner, repos,
		trade.WithLogger(log.Component("trade")),
		trade.WithMetrics(tradeMetrics),
	)
	receiptUC := trade.NewReceiptUseCase(repos, infrapdf.NewReceiptGenerator(cfg.App.Name))

	app := httpRouter.NewApp(cfg.App.Name, log.Component("http"))

	// Swagger UI: http://localhost:<port>/docs
	if cfg.HTTP.SwaggerPath != "" {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.HTTP.SwaggerPath,
			Path:     "docs",
			Title:    "Mercado API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		Transactions: transactionUC,
		Receipts:     receiptUC,
		Goods:        usecase.NewGoodUseCase(repos.Goods),
		Hunters:      usecase.NewHunterUseCase(repos.Hunters),
		Merchants:    usecase.NewMerchantUseCase(repos.Merchants),
		JWTSecret:    cfg.JWT.Secret,
		StoreName:    cfg.Store,
		Metrics:      gatherer,
		Log:          log.Component("http"),
	})
	if !cfg.JWT.Enabled() {
		log.Warn().Msg("JWT_SECRET vacío: rutas de escritura sin autenticación")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}

func runMigrations(ctx context.Context, cfg config.DBConfig) error {
	db, err := migrate.Open(cfg.ConnectionString())
	if err != nil {
		return err
	}
	defer db.Close()
	return migrate.Up(ctx, db)
}
