package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/application/trade"
	"github.com/jhoicas/mercado-api/internal/application/usecase"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/mercado-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/mercado-api/internal/interfaces/http"
	"github.com/jhoicas/mercado-api/pkg/metrics"
)

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testIssuer    = "mercado-api-test"
)

// newTestApp monta la API completa sobre el store en memoria con el bien 3,
// el cazador 3 y el mercader 3 precargados.
func newTestApp(t *testing.T, jwtSecret string) *fiber.App {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()
	repos := store.Repos()
	require.NoError(t, repos.Goods.Create(ctx, &entity.Good{
		ID: 3, Name: "Espada de Plata", Description: "Hoja para monstruos", Material: "Plata",
		Weight: decimal.NewFromInt(3), UnitValue: decimal.NewFromInt(800), Stock: 100,
	}))
	require.NoError(t, repos.Hunters.Create(ctx, &entity.Hunter{ID: 3, Name: "testhunter3", Race: entity.RaceWitcher, Location: "Kaer Morhen"}))
	require.NoError(t, repos.Merchants.Create(ctx, &entity.Merchant{ID: 3, Name: "testmerchant3", Kind: entity.MerchantBlacksmith, Location: "Novigrado"}))

	reg := prometheus.NewRegistry()
	log := zerolog.Nop()
	app := apphttp.NewApp("mercado-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		Transactions: trade.NewTransactionUseCase(store, repos, trade.WithMetrics(metrics.NewTradeMetrics(reg))),
		Receipts:     trade.NewReceiptUseCase(repos, infrapdf.NewReceiptGenerator("mercado-test")),
		Goods:        usecase.NewGoodUseCase(repos.Goods),
		Hunters:      usecase.NewHunterUseCase(repos.Hunters),
		Merchants:    usecase.NewMerchantUseCase(repos.Merchants),
		JWTSecret:    jwtSecret,
		StoreName:    "memory",
		Metrics:      reg,
		Log:          log,
	})
	return app
}

type call struct {
	method string
	path   string
	body   any
	token  string
}

func do(t *testing.T, app *fiber.App, c call) (int, []byte, http.Header) {
	t.Helper()
	var reader io.Reader
	switch b := c.body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(c.method, c.path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, body, resp.Header
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func purchaseBody(id int64, qty int) map[string]any {
	return map[string]any{
		"id":    id,
		"type":  "purchase",
		"name":  "testhunter3",
		"items": []map[string]any{{"name": "Espada de Plata", "quantity": qty}},
	}
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	return decode[dto.ErrorResponse](t, body).Code
}
