package usecase

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/scms-api/internal/domain/entity"
	"github.com/jhoicas/scms-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles en memoria de los puertos CRUD. Sin concurrencia: estos casos de uso
// no coordinan escritores; la serialización vive en el ejecutor de
// transferencias.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[string]entity.Product)}
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.products[p.SKU] = *p
	return nil
}

func (r *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	p, ok := r.products[sku]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakeProductRepo) List(_ context.Context) ([]*entity.Product, error) {
	skus := make([]string, 0, len(r.products))
	for sku := range r.products {
		skus = append(skus, sku)
	}
	sort.Strings(skus)
	out := make([]*entity.Product, 0, len(skus))
	for _, sku := range skus {
		p := r.products[sku]
		out = append(out, &p)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	r.products[p.SKU] = *p
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, sku string) error {
	delete(r.products, sku)
	return nil
}

type fakeLocationRepo struct {
	locations map[string]entity.Location
}

func newFakeLocationRepo(names ...string) *fakeLocationRepo {
	r := &fakeLocationRepo{locations: make(map[string]entity.Location)}
	for _, name := range names {
		r.locations[name] = entity.Location{Name: name, Role: entity.LocationRoleWarehouse}
	}
	return r
}

func (r *fakeLocationRepo) GetByName(_ context.Context, name string) (*entity.Location, error) {
	loc, ok := r.locations[name]
	if !ok {
		return nil, nil
	}
	return &loc, nil
}

func (r *fakeLocationRepo) ListWarehouses(_ context.Context) ([]entity.Location, error) {
	var out []entity.Location
	for _, loc := range r.locations {
		if loc.Role == entity.LocationRoleWarehouse {
			out = append(out, loc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakeStockRepo struct {
	entries map[string]*entity.StockEntry // clave "sku|location"
	lowRows []repository.LowStockRow
}

func newFakeStockRepo() *fakeStockRepo {
	return &fakeStockRepo{entries: make(map[string]*entity.StockEntry)}
}

func key(sku, location string) string { return sku + "|" + location }

func (r *fakeStockRepo) Get(_ context.Context, sku, location string) (*entity.StockEntry, error) {
	e, ok := r.entries[key(sku, location)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (r *fakeStockRepo) GetForUpdate(ctx context.Context, sku, location string) (*entity.StockEntry, error) {
	return r.Get(ctx, sku, location)
}

func (r *fakeStockRepo) Upsert(_ context.Context, st *entity.StockEntry) error {
	cp := *st
	r.entries[key(st.SKU, st.Location)] = &cp
	return nil
}

func (r *fakeStockRepo) AddQuantity(_ context.Context, sku, location string, delta int64) error {
	k := key(sku, location)
	if e, ok := r.entries[k]; ok {
		e.Quantity += delta
		return nil
	}
	r.entries[k] = &entity.StockEntry{SKU: sku, Location: location, Quantity: delta}
	return nil
}

func (r *fakeStockRepo) ListAll(_ context.Context) ([]*entity.StockEntry, error) {
	keys := make([]string, 0, len(r.entries))
	for k := range r.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]*entity.StockEntry, 0, len(keys))
	for _, k := range keys {
		cp := *r.entries[k]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStockRepo) ListBySKU(_ context.Context, sku string) ([]*entity.StockEntry, error) {
	var out []*entity.StockEntry
	for _, e := range r.entries {
		if e.SKU == sku {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeStockRepo) TotalBySKU(_ context.Context, sku string) (int64, error) {
	var total int64
	for _, e := range r.entries {
		if e.SKU == sku {
			total += e.Quantity
		}
	}
	return total, nil
}

func (r *fakeStockRepo) ListLowStock(_ context.Context) ([]repository.LowStockRow, error) {
	return r.lowRows, nil
}

type fakeOrderRepo struct {
	orders map[string]entity.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]entity.Order)}
}

func (r *fakeOrderRepo) Create(_ context.Context, o *entity.Order) error {
	r.orders[o.ID] = *o
	return nil
}

func (r *fakeOrderRepo) GetByID(_ context.Context, id string) (*entity.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	return &o, nil
}

func (r *fakeOrderRepo) ListByCustomer(_ context.Context, customerName string) ([]*entity.Order, error) {
	var out []*entity.Order
	for _, o := range r.orders {
		if o.CustomerName == customerName {
			cp := o
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(_ context.Context, id, status string) error {
	o := r.orders[id]
	o.Status = status
	r.orders[id] = o
	return nil
}

func (r *fakeOrderRepo) Delete(_ context.Context, id string) error {
	delete(r.orders, id)
	return nil
}

func (r *fakeOrderRepo) CountAll(_ context.Context) (int64, error) {
	return int64(len(r.orders)), nil
}

func (r *fakeOrderRepo) CountByStatus(_ context.Context, status string) (int64, error) {
	var n int64
	for _, o := range r.orders {
		if o.Status == status {
			n++
		}
	}
	return n, nil
}

type fakeCostRepo struct {
	records []entity.CostRecord
}

func (r *fakeCostRepo) Append(_ context.Context, rec *entity.CostRecord) error {
	r.records = append(r.records, *rec)
	return nil
}

func (r *fakeCostRepo) TotalAmount(_ context.Context) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, rec := range r.records {
		total = total.Add(rec.Amount)
	}
	return total, nil
}

type fakeUserRepo struct {
	users map[string]entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	r.users[u.Username] = *u
	return nil
}

func (r *fakeUserRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}
