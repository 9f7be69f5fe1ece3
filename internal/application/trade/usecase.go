package trade

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/entity"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
	"github.com/jhoicas/mercado-api/pkg/metrics"
)

// Nombres de operación usados en logs y métricas.
const (
	opCreate       = "create"
	opRevise       = "revise"
	opDelete       = "delete"
	opGet          = "get"
	opListByParty  = "list_by_party"
	opListByFilter = "list_by_filter"
)

// TransactionUseCase gestiona el ciclo de vida de las transacciones (ausente → activa → devuelta).
// Cada operación que modifica stock se ejecuta dentro de una única transacción del almacén.
type TransactionUseCase struct {
	txRunner TxRunner
	repos    Repos
	log      zerolog.Logger
	metrics  *metrics.TradeMetrics
	now      func() time.Time
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*TransactionUseCase)

// WithLogger inyecta el logger estructurado.
func WithLogger(log zerolog.Logger) Option {
	return func(uc *TransactionUseCase) { uc.log = log }
}

// WithMetrics inyecta el recolector de métricas.
func WithMetrics(m *metrics.TradeMetrics) Option {
	return func(uc *TransactionUseCase) { uc.metrics = m }
}

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) Option {
	return func(uc *TransactionUseCase) { uc.now = now }
}

// NewTransactionUseCase construye el caso de uso. repos se usa para lecturas fuera de transacción.
func NewTransactionUseCase(txRunner TxRunner, repos Repos, opts ...Option) *TransactionUseCase {
	uc := &TransactionUseCase{
		txRunner: txRunner,
		repos:    repos,
		log:      zerolog.Nop(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// CreateInput entrada para registrar una compra o una venta.
type CreateInput struct {
	ID        int64
	Type      string
	PartyName string
	Items     []ItemInput
}

// FilterInput filtros de listado por fecha y tipo. Todos opcionales.
type FilterInput struct {
	From *time.Time
	To   *time.Time
	Type string
}

// engine componentes del motor atados a los repositorios de una unidad de trabajo.
type engine struct {
	repos      Repos
	parties    *PartyResolver
	reconciler *Reconciler
}

func newEngine(repos Repos) engine {
	return engine{
		repos:      repos,
		parties:    NewPartyResolver(NewHunterDirectory(repos.Hunters), NewMerchantDirectory(repos.Merchants)),
		reconciler: NewReconciler(NewGoodLedger(repos.Goods)),
	}
}

// Create registra una transacción nueva.
// Errores: ErrInvalidInput, ErrDuplicateID, ErrInvalidType, ErrPartyNotFound y los del Reconciler.
func (uc *TransactionUseCase) Create(ctx context.Context, in CreateInput) (tx *entity.Transaction, err error) {
	defer uc.observe(opCreate, time.Now(), &err)
	if in.ID <= 0 {
		return nil, fmt.Errorf("%w: id debe ser positivo", domain.ErrInvalidInput)
	}
	if err := validateItems(in.Items); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}
	name := strings.TrimSpace(in.PartyName)

	err = uc.txRunner.Run(ctx, func(repos Repos) error {
		eng := newEngine(repos)
		existing, err := repos.Transactions.GetByID(ctx, in.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			return fmt.Errorf("%w: %d", domain.ErrDuplicateID, in.ID)
		}
		if !entity.IsTradeType(in.Type) {
			return fmt.Errorf("%w: %q", domain.ErrInvalidType, in.Type)
		}
		party, err := eng.parties.Resolve(ctx, in.Type, name)
		if err != nil {
			return err
		}
		if party == nil {
			return fmt.Errorf("%w: %s", domain.ErrPartyNotFound, name)
		}
		now := uc.now()
		rec, err := eng.reconciler.Apply(ctx, in.Type, in.Items, now)
		if err != nil {
			return err
		}
		created := &entity.Transaction{
			ID:    in.ID,
			Type:  in.Type,
			Date:  now,
			Items: rec.Items,
			Value: rec.Value,
		}
		party.Assign(created)
		if err := repos.Transactions.Create(ctx, created); err != nil {
			if errors.Is(err, domain.ErrDuplicate) {
				return fmt.Errorf("%w: %d", domain.ErrDuplicateID, in.ID)
			}
			return err
		}
		tx = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.AddValue(tx.Type, tx.Value.InexactFloat64())
	uc.log.Info().Int64("id", tx.ID).Str("type", tx.Type).Str("value", tx.Value.String()).Msg("transacción registrada")
	return tx, nil
}

// Revise reemplaza las líneas de una transacción activa: revierte el efecto de las líneas
// actuales y aplica las nuevas como si fuese una transacción nueva del mismo tipo.
// Las nuevas líneas se resuelven por nombre de bien.
func (uc *TransactionUseCase) Revise(ctx context.Context, id int64, items []ItemInput) (tx *entity.Transaction, err error) {
	defer uc.observe(opRevise, time.Now(), &err)
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: se requiere al menos un bien", domain.ErrInvalidUpdate)
	}
	if err := validateItems(items); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidUpdate, err.Error())
	}

	err = uc.txRunner.Run(ctx, func(repos Repos) error {
		eng := newEngine(repos)
		current, err := loadActive(ctx, repos, id)
		if err != nil {
			return err
		}
		party, err := eng.parties.ResolveRef(ctx, current)
		if err != nil {
			return err
		}
		if party == nil {
			return fmt.Errorf("%w: id %d", domain.ErrPartyNotFound, current.PartyID())
		}
		now := uc.now()
		if _, err := eng.reconciler.Reverse(ctx, current.Type, current.Items, ReverseForRevision, now); err != nil {
			return err
		}
		rec, err := eng.reconciler.Apply(ctx, current.Type, items, now)
		if err != nil {
			return err
		}
		current.Items = rec.Items
		current.Value = rec.Value
		if err := repos.Transactions.Update(ctx, current); err != nil {
			return err
		}
		tx = current
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int64("id", tx.ID).Str("type", tx.Type).Str("value", tx.Value.String()).Msg("transacción revisada")
	return tx, nil
}

// Delete elimina una transacción activa generando su devolución: revierte el efecto de stock
// de cada línea (omitiendo bienes que ya no existen), persiste una transacción de tipo
// devolution con id max+1 y borra la original. Devuelve la devolución.
func (uc *TransactionUseCase) Delete(ctx context.Context, id int64) (devolution *entity.Transaction, err error) {
	defer uc.observe(opDelete, time.Now(), &err)

	err = uc.txRunner.Run(ctx, func(repos Repos) error {
		eng := newEngine(repos)
		original, err := loadActive(ctx, repos, id)
		if err != nil {
			return err
		}
		party, err := eng.parties.ResolveRef(ctx, original)
		if err != nil {
			return err
		}
		if party == nil {
			return fmt.Errorf("%w: id %d", domain.ErrPartyNotFound, original.PartyID())
		}
		nextID, err := nextTransactionID(ctx, repos.Transactions)
		if err != nil {
			return err
		}
		now := uc.now()
		rec, err := eng.reconciler.Reverse(ctx, original.Type, original.Items, ReverseForDevolution, now)
		if err != nil {
			return err
		}
		dev := &entity.Transaction{
			ID:    nextID,
			Type:  entity.TransactionTypeDevolution,
			Date:  now,
			Items: rec.Items,
			Value: rec.Value,
		}
		party.Assign(dev)
		if err := repos.Transactions.Create(ctx, dev); err != nil {
			return err
		}
		if err := repos.Transactions.Delete(ctx, original.ID); err != nil {
			return err
		}
		devolution = dev
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.metrics.AddValue(devolution.Type, devolution.Value.InexactFloat64())
	uc.log.Info().Int64("original_id", id).Int64("id", devolution.ID).
		Int("items", len(devolution.Items)).Str("value", devolution.Value.String()).Msg("devolución registrada")
	return devolution, nil
}

// Get obtiene una transacción por id.
func (uc *TransactionUseCase) Get(ctx context.Context, id int64) (tx *entity.Transaction, err error) {
	defer uc.observe(opGet, time.Now(), &err)
	tx, err = uc.repos.Transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrTransactionNotFound, id)
	}
	return tx, nil
}

// ListByParty devuelve las transacciones del cazador y del mercader con ese nombre.
// Falla con ErrPartyNotFound si no existe ninguno de los dos.
func (uc *TransactionUseCase) ListByParty(ctx context.Context, name string) (list []*entity.Transaction, err error) {
	defer uc.observe(opListByParty, time.Now(), &err)
	name = strings.TrimSpace(name)
	hunter, err := NewHunterDirectory(uc.repos.Hunters).FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	merchant, err := NewMerchantDirectory(uc.repos.Merchants).FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if hunter == nil && merchant == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrPartyNotFound, name)
	}
	list = []*entity.Transaction{}
	for _, p := range []*Party{hunter, merchant} {
		if p == nil {
			continue
		}
		var filter repository.TransactionFilter
		id := p.ID
		if p.Kind == entity.TransactionTypePurchase {
			filter.HunterID = &id
		} else {
			filter.MerchantID = &id
		}
		found, err := uc.repos.Transactions.List(ctx, filter)
		if err != nil {
			return nil, err
		}
		list = append(list, found...)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// ListByFilter lista por rango de fechas y/o tipo. Sin coincidencias devuelve lista vacía.
func (uc *TransactionUseCase) ListByFilter(ctx context.Context, in FilterInput) (list []*entity.Transaction, err error) {
	defer uc.observe(opListByFilter, time.Now(), &err)
	if in.Type != "" && !entity.IsTransactionType(in.Type) {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidType, in.Type)
	}
	if in.From != nil && in.To != nil && in.To.Before(*in.From) {
		return nil, fmt.Errorf("%w: la fecha final es anterior a la inicial", domain.ErrInvalidInput)
	}
	list, err = uc.repos.Transactions.List(ctx, repository.TransactionFilter{
		Type: in.Type,
		From: in.From,
		To:   in.To,
	})
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*entity.Transaction{}
	}
	return list, nil
}

// loadActive carga una transacción revisable/borrable (compra o venta).
func loadActive(ctx context.Context, repos Repos, id int64) (*entity.Transaction, error) {
	tx, err := repos.Transactions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrTransactionNotFound, id)
	}
	if !entity.IsTradeType(tx.Type) {
		return nil, fmt.Errorf("%w: la transacción %d es una devolución", domain.ErrInvalidType, id)
	}
	return tx, nil
}

// nextTransactionID devuelve max(id)+1, o 1 si no hay transacciones.
func nextTransactionID(ctx context.Context, repo repository.TransactionRepository) (int64, error) {
	maxID, ok, err := repo.MaxID(ctx)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 1, nil
	}
	return maxID + 1, nil
}

// validateItems comprueba nombre no vacío y cantidad >= 1 en cada línea.
func validateItems(items []ItemInput) error {
	if len(items) == 0 {
		return errors.New("se requiere al menos un bien")
	}
	for i := range items {
		items[i].Name = strings.TrimSpace(items[i].Name)
		if items[i].Name == "" {
			return fmt.Errorf("bien %d sin nombre", i)
		}
		if items[i].Quantity < 1 {
			return fmt.Errorf("cantidad de %q debe ser al menos 1", items[i].Name)
		}
		if items[i].UnitValue != nil && items[i].UnitValue.IsNegative() {
			return fmt.Errorf("valor de %q no puede ser negativo", items[i].Name)
		}
		if items[i].Weight != nil && items[i].Weight.IsNegative() {
			return fmt.Errorf("peso de %q no puede ser negativo", items[i].Name)
		}
		if items[i].UnitValue != nil && !entity.FitsPlaces(*items[i].UnitValue, entity.UnitValuePlaces) {
			return fmt.Errorf("valor de %q admite como máximo %d decimales", items[i].Name, entity.UnitValuePlaces)
		}
		if items[i].Weight != nil && !entity.FitsPlaces(*items[i].Weight, entity.WeightPlaces) {
			return fmt.Errorf("peso de %q admite como máximo %d decimales", items[i].Name, entity.WeightPlaces)
		}
	}
	return nil
}

func (uc *TransactionUseCase) observe(op string, start time.Time, errp *error) {
	outcome := "ok"
	if errp != nil && *errp != nil {
		kind := domain.KindOf(*errp)
		outcome = string(kind)
		if kind == domain.KindInternal {
			uc.log.Error().Err(*errp).Str("operation", op).Msg("fallo interno en transacción")
		} else {
			uc.log.Warn().Err(*errp).Str("operation", op).Str("kind", outcome).Msg("transacción rechazada")
		}
	}
	uc.metrics.Observe(op, outcome, time.Since(start))
}
