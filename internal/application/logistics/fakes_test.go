package logistics_test

import (
	"context"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/application/logistics"
	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de prueba en memoria: un único almacén respaldando todos los puertos,
// con un TxRunner que serializa las transacciones (cola de un solo escritor) y
// revierte el estado ante error, igual que la transacción real de PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type stockKey struct {
	sku      string
	location string
}

type fakeStore struct {
	mu        sync.Mutex
	stock     map[stockKey]*entity.StockEntry
	routes    []entity.RouteEdge
	locations map[string]entity.Location
	products  map[string]*entity.Product
	orders    map[string]*entity.Order
	costs     []*entity.CostRecord
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		stock:     make(map[stockKey]*entity.StockEntry),
		locations: make(map[string]entity.Location),
		products:  make(map[string]*entity.Product),
		orders:    make(map[string]*entity.Order),
	}
}

func (s *fakeStore) addLocation(name, role string) {
	s.locations[name] = entity.Location{Name: name, Role: role}
}

func (s *fakeStore) addProduct(sku string) {
	s.products[sku] = &entity.Product{SKU: sku, Name: sku}
}

func (s *fakeStore) addRoute(origin, destination string, cost float64) {
	s.routes = append(s.routes, entity.RouteEdge{
		Origin:      origin,
		Destination: destination,
		Cost:        decimal.NewFromFloat(cost),
	})
}

func (s *fakeStore) setStock(sku, location string, quantity int64) {
	s.stock[stockKey{sku, location}] = &entity.StockEntry{SKU: sku, Location: location, Quantity: quantity}
}

func (s *fakeStore) quantity(sku, location string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.stock[stockKey{sku, location}]; ok {
		return entry.Quantity
	}
	return 0
}

// ── StockRepository ───────────────────────────────────────────────────────────

type fakeStockRepo struct{ s *fakeStore }

func (r *fakeStockRepo) Get(_ context.Context, sku, location string) (*entity.StockEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entry, ok := r.s.stock[stockKey{sku, location}]
	if !ok {
		return nil, nil
	}
	clone := *entry
	return &clone, nil
}

func (r *fakeStockRepo) GetForUpdate(ctx context.Context, sku, location string) (*entity.StockEntry, error) {
	return r.Get(ctx, sku, location)
}

func (r *fakeStockRepo) Upsert(_ context.Context, stock *entity.StockEntry) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *stock
	r.s.stock[stockKey{stock.SKU, stock.Location}] = &clone
	return nil
}

func (r *fakeStockRepo) AddQuantity(_ context.Context, sku, location string, delta int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := stockKey{sku, location}
	entry, ok := r.s.stock[key]
	if !ok {
		entry = &entity.StockEntry{SKU: sku, Location: location}
		r.s.stock[key] = entry
	}
	entry.Quantity += delta
	return nil
}

func (r *fakeStockRepo) ListAll(_ context.Context) ([]*entity.StockEntry, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	entries := make([]*entity.StockEntry, 0, len(r.s.stock))
	for _, entry := range r.s.stock {
		clone := *entry
		entries = append(entries, &clone)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].SKU != entries[j].SKU {
			return entries[i].SKU < entries[j].SKU
		}
		return entries[i].Location < entries[j].Location
	})
	return entries, nil
}

func (r *fakeStockRepo) ListBySKU(ctx context.Context, sku string) ([]*entity.StockEntry, error) {
	all, _ := r.ListAll(ctx)
	var entries []*entity.StockEntry
	for _, entry := range all {
		if entry.SKU == sku {
			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func (r *fakeStockRepo) TotalBySKU(_ context.Context, sku string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var total int64
	for key, entry := range r.s.stock {
		if key.sku == sku {
			total += entry.Quantity
		}
	}
	return total, nil
}

func (r *fakeStockRepo) ListLowStock(_ context.Context) ([]repository.LowStockRow, error) {
	return nil, nil
}

// ── RouteRepository ───────────────────────────────────────────────────────────

type fakeRouteRepo struct{ s *fakeStore }

func (r *fakeRouteRepo) Get(_ context.Context, origin, destination string) (*entity.RouteEdge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, edge := range r.s.routes {
		if edge.Origin == origin && edge.Destination == destination {
			clone := edge
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeRouteRepo) ListAll(_ context.Context) ([]entity.RouteEdge, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return append([]entity.RouteEdge(nil), r.s.routes...), nil
}

func (r *fakeRouteRepo) ListOriginsWithStock(_ context.Context, destination, sku string) ([]repository.OriginStock, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var rows []repository.OriginStock
	for _, edge := range r.s.routes {
		if edge.Destination != destination {
			continue
		}
		entry, ok := r.s.stock[stockKey{sku, edge.Origin}]
		if !ok || entry.Quantity < 1 {
			continue
		}
		rows = append(rows, repository.OriginStock{
			Origin:   edge.Origin,
			Role:     r.s.locations[edge.Origin].Role,
			Cost:     edge.Cost,
			Quantity: entry.Quantity,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Origin < rows[j].Origin })
	return rows, nil
}

// ── LocationRepository ────────────────────────────────────────────────────────

type fakeLocationRepo struct{ s *fakeStore }

func (r *fakeLocationRepo) GetByName(_ context.Context, name string) (*entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	loc, ok := r.s.locations[name]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (r *fakeLocationRepo) ListWarehouses(_ context.Context) ([]entity.Location, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var warehouses []entity.Location
	for _, loc := range r.s.locations {
		if loc.Role == entity.LocationRoleWarehouse {
			warehouses = append(warehouses, loc)
		}
	}
	sort.Slice(warehouses, func(i, j int) bool { return warehouses[i].Name < warehouses[j].Name })
	return warehouses, nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct{ s *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *product
	r.s.products[product.SKU] = &clone
	return nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	product, ok := r.s.products[sku]
	if !ok {
		return nil, nil
	}
	clone := *product
	return &clone, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	products := make([]*entity.Product, 0, len(r.s.products))
	for _, product := range r.s.products {
		clone := *product
		products = append(products, &clone)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].SKU < products[j].SKU })
	return products, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	return r.Create(ctx, product)
}

func (r *fakeProductRepo) Delete(_ context.Context, sku string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, sku)
	return nil
}

// ── OrderRepository ───────────────────────────────────────────────────────────

type fakeOrderRepo struct{ s *fakeStore }

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *order
	r.s.orders[order.ID] = &clone
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	order, ok := r.s.orders[id]
	if !ok {
		return nil, nil
	}
	clone := *order
	return &clone, nil
}

func (r *fakeOrderRepo) ListByCustomer(_ context.Context, customerName string) ([]*entity.Order, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var orders []*entity.Order
	for _, order := range r.s.orders {
		if order.CustomerName == customerName {
			clone := *order
			orders = append(orders, &clone)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].ID < orders[j].ID })
	return orders, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if order, ok := r.s.orders[id]; ok {
		order.Status = status
	}
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountAll(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(r.s.orders)), nil
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var count int64
	for _, order := range r.s.orders {
		if order.Status == status {
			count++
		}
	}
	return count, nil
}

// ── CostRecordRepository ──────────────────────────────────────────────────────

type fakeCostRepo struct{ s *fakeStore }

func (r *fakeCostRepo) Append(_ context.Context, record *entity.CostRecord) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	clone := *record
	r.s.costs = append(r.s.costs, &clone)
	return nil
}

func (r *fakeCostRepo) TotalAmount(_ context.Context) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, record := range r.s.costs {
		total = total.Add(record.Amount)
	}
	return total, nil
}

// ── TxRunner ──────────────────────────────────────────────────────────────────

// fakeTxRunner serializa cada transferencia (txMu) y revierte stock y costos
// si fn falla, reproduciendo la semántica Commit/Rollback del runner real.
type fakeTxRunner struct {
	s    *fakeStore
	txMu sync.Mutex
}

func (t *fakeTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	costRepo repository.CostRecordRepository,
	orderRepo repository.OrderRepository,
) error) error {
	t.txMu.Lock()
	defer t.txMu.Unlock()

	t.s.mu.Lock()
	stockSnapshot := make(map[stockKey]*entity.StockEntry, len(t.s.stock))
	for key, entry := range t.s.stock {
		clone := *entry
		stockSnapshot[key] = &clone
	}
	costCount := len(t.s.costs)
	t.s.mu.Unlock()

	err := fn(&fakeStockRepo{t.s}, &fakeCostRepo{t.s}, &fakeOrderRepo{t.s})
	if err != nil {
		t.s.mu.Lock()
		t.s.stock = stockSnapshot
		t.s.costs = t.s.costs[:costCount]
		t.s.mu.Unlock()
	}
	return err
}

// rowLockTxRunner reproduce la semántica de bloqueo por fila de PostgreSQL:
// solo las filas leídas con GetForUpdate quedan bloqueadas hasta el fin de la
// transacción; las demás lecturas y escrituras NO se serializan entre
// transacciones. A diferencia de fakeTxRunner (mutex global, más fuerte que
// la base real), este doble deja intercalarse a dos transacciones que tocan
// filas distintas, que es el escenario donde un crédito mal hecho pierde
// stock. No implementa rollback: es para transacciones que terminan en
// Commit o fallan antes de escribir.
type rowLockTxRunner struct {
	s  *fakeStore
	mu sync.Mutex
	// rowLocks simula el lock manager: un mutex por fila de stock.
	rowLocks map[stockKey]*sync.Mutex

	// Ganchos de sincronización para forzar intercalados adversos desde los
	// tests. Ambos pueden ser nil.
	afterLockedRead func() // tras cada GetForUpdate
	beforeWrite     func() // antes de la primera escritura de cada transacción
}

func newRowLockTxRunner(s *fakeStore) *rowLockTxRunner {
	return &rowLockTxRunner{s: s, rowLocks: make(map[stockKey]*sync.Mutex)}
}

func (t *rowLockTxRunner) lockRow(key stockKey) func() {
	t.mu.Lock()
	rowMu, ok := t.rowLocks[key]
	if !ok {
		rowMu = &sync.Mutex{}
		t.rowLocks[key] = rowMu
	}
	t.mu.Unlock()
	rowMu.Lock()
	return rowMu.Unlock
}

func (t *rowLockTxRunner) Run(_ context.Context, fn func(
	stockRepo repository.StockRepository,
	costRepo repository.CostRecordRepository,
	orderRepo repository.OrderRepository,
) error) error {
	tx := &rowLockStockRepo{runner: t, base: &fakeStockRepo{t.s}}
	defer tx.releaseLocks()
	return fn(tx, &fakeCostRepo{t.s}, &fakeOrderRepo{t.s})
}

// rowLockStockRepo envuelve fakeStockRepo adquiriendo el lock de fila en
// GetForUpdate y reteniéndolo hasta el fin de la transacción.
type rowLockStockRepo struct {
	runner    *rowLockTxRunner
	base      *fakeStockRepo
	held      []func()
	wroteOnce sync.Once
}

func (r *rowLockStockRepo) releaseLocks() {
	for _, unlock := range r.held {
		unlock()
	}
	r.held = nil
}

func (r *rowLockStockRepo) syncBeforeWrite() {
	r.wroteOnce.Do(func() {
		if r.runner.beforeWrite != nil {
			r.runner.beforeWrite()
		}
	})
}

func (r *rowLockStockRepo) Get(ctx context.Context, sku, location string) (*entity.StockEntry, error) {
	return r.base.Get(ctx, sku, location)
}

func (r *rowLockStockRepo) GetForUpdate(ctx context.Context, sku, location string) (*entity.StockEntry, error) {
	r.held = append(r.held, r.runner.lockRow(stockKey{sku, location}))
	entry, err := r.base.Get(ctx, sku, location)
	if r.runner.afterLockedRead != nil {
		r.runner.afterLockedRead()
	}
	return entry, err
}

func (r *rowLockStockRepo) Upsert(ctx context.Context, stock *entity.StockEntry) error {
	r.syncBeforeWrite()
	return r.base.Upsert(ctx, stock)
}

func (r *rowLockStockRepo) AddQuantity(ctx context.Context, sku, location string, delta int64) error {
	r.syncBeforeWrite()
	return r.base.AddQuantity(ctx, sku, location, delta)
}

func (r *rowLockStockRepo) ListAll(ctx context.Context) ([]*entity.StockEntry, error) {
	return r.base.ListAll(ctx)
}

func (r *rowLockStockRepo) ListBySKU(ctx context.Context, sku string) ([]*entity.StockEntry, error) {
	return r.base.ListBySKU(ctx, sku)
}

func (r *rowLockStockRepo) TotalBySKU(ctx context.Context, sku string) (int64, error) {
	return r.base.TotalBySKU(ctx, sku)
}

func (r *rowLockStockRepo) ListLowStock(ctx context.Context) ([]repository.LowStockRow, error) {
	return r.base.ListLowStock(ctx)
}

// newTransferFixture arma el caso de uso de transferencias sobre un almacén fake.
func newTransferFixture(s *fakeStore) *logistics.TransferUseCase {
	return logistics.NewTransferUseCase(
		&fakeTxRunner{s: s},
		&fakeLocationRepo{s},
		&fakeProductRepo{s},
		&fakeRouteRepo{s},
	)
}

// newRowLockTransferFixture arma el caso de uso sobre el runner con bloqueo
// por fila, para los tests de concurrencia.
func newRowLockTransferFixture(s *fakeStore) (*logistics.TransferUseCase, *rowLockTxRunner) {
	runner := newRowLockTxRunner(s)
	uc := logistics.NewTransferUseCase(
		runner,
		&fakeLocationRepo{s},
		&fakeProductRepo{s},
		&fakeRouteRepo{s},
	)
	return uc, runner
}
