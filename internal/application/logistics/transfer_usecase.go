package logistics

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/domain"
	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// TransferUseCase ejecuta transferencias de stock entre ubicaciones de forma
// transaccional: débito en origen con bloqueo de fila (SELECT FOR UPDATE),
// crédito en destino y registro de costo, con Commit/Rollback como unidad.
// Es el único escritor del libro de existencias.
type TransferUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	routeRepo    repository.RouteRepository
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	routeRepo repository.RouteRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		routeRepo:    routeRepo,
	}
}

// MoveProduct mueve quantity unidades del SKU desde origin hacia destination
// y registra un costo de quantity * unitCost. Todo-o-nada: cualquier fallo
// deja el libro de existencias sin cambios.
func (uc *TransferUseCase) MoveProduct(ctx context.Context, sku, origin, destination string, quantity int64, unitCost decimal.Decimal) error {
	if err := uc.validate(ctx, sku, origin, destination, quantity, unitCost); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		costRepo repository.CostRecordRepository,
		_ repository.OrderRepository,
	) error {
		return uc.doTransfer(ctx, stockRepo, costRepo, sku, origin, destination, quantity, unitCost, "")
	})
}

// MoveOrderToCustomer ejecuta la misma transferencia que MoveProduct pero
// asociada a una orden existente; no crea órdenes. El costo unitario se toma
// de la arista directa origen→destino.
func (uc *TransferUseCase) MoveOrderToCustomer(ctx context.Context, orderID, sku string, quantity int64, origin, destination string) error {
	if orderID == "" {
		return domain.ErrInvalidInput
	}
	edge, err := uc.routeRepo.Get(ctx, origin, destination)
	if err != nil {
		return err
	}
	if edge == nil {
		return domain.ErrRouteNotFound
	}
	unitCost := edge.Cost
	if err := uc.validate(ctx, sku, origin, destination, quantity, unitCost); err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(
		stockRepo repository.StockRepository,
		costRepo repository.CostRecordRepository,
		orderRepo repository.OrderRepository,
	) error {
		order, err := orderRepo.GetByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}
		return uc.doTransfer(ctx, stockRepo, costRepo, sku, origin, destination, quantity, unitCost, orderID)
	})
}

// validate aplica las precondiciones que no requieren transacción: entradas
// válidas, ubicaciones registradas y SKU existente.
func (uc *TransferUseCase) validate(ctx context.Context, sku, origin, destination string, quantity int64, unitCost decimal.Decimal) error {
	if sku == "" || origin == "" || destination == "" || origin == destination {
		return domain.ErrInvalidInput
	}
	if quantity <= 0 || unitCost.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	for _, name := range []string{origin, destination} {
		loc, err := uc.locationRepo.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if loc == nil {
			return domain.ErrUnknownLocation
		}
	}
	product, err := uc.productRepo.GetBySKU(ctx, sku)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrUnknownSku
	}
	return nil
}

// doTransfer es la sección crítica: se ejecuta siempre dentro de la
// transacción del TxRunner. El GetForUpdate serializa transferencias
// concurrentes que drenan el mismo origen, de modo que la verificación de
// suficiencia nunca pasa sobre una lectura obsoleta.
func (uc *TransferUseCase) doTransfer(
	ctx context.Context,
	stockRepo repository.StockRepository,
	costRepo repository.CostRecordRepository,
	sku, origin, destination string,
	quantity int64,
	unitCost decimal.Decimal,
	orderID string,
) error {
	now := time.Now()

	originStock, err := stockRepo.GetForUpdate(ctx, sku, origin)
	if err != nil {
		return err
	}
	if originStock == nil || originStock.Quantity < quantity {
		return domain.ErrInsufficientStock
	}

	originStock.Quantity -= quantity
	originStock.UpdatedAt = now
	if err := stockRepo.Upsert(ctx, originStock); err != nil {
		return err
	}
	// Crédito por delta: el upsert suma atómicamente sobre la fila destino
	// (creándola si el destino recibe el SKU por primera vez), así dos
	// transferencias desde orígenes distintos hacia el mismo destino nunca
	// se pisan el crédito, aun sin bloquear la fila destino.
	if err := stockRepo.AddQuantity(ctx, sku, destination, quantity); err != nil {
		return err
	}

	record := &entity.CostRecord{
		ID:          uuid.New().String(),
		SKU:         sku,
		Origin:      origin,
		Destination: destination,
		Quantity:    quantity,
		Amount:      decimal.NewFromInt(quantity).Mul(unitCost),
		OrderID:     orderID,
		CreatedAt:   now,
	}
	return costRepo.Append(ctx, record)
}
