package repositories

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

// ErrCorruptCounter is returned when "last_order_id" holds something other
// than an integer. Ids are never guessed, so the caller has to repair it.
var ErrCorruptCounter = errors.New("repositories: last_order_id is not an integer")

// OrderRepository owns the "orders" list and the "last_order_id" counter.
type OrderRepository struct {
	mu       sync.Mutex
	store    recordstore.Store
	products *ProductRepository
}

func NewOrderRepository(store recordstore.Store, products *ProductRepository) *OrderRepository {
	return &OrderRepository{store: store, products: products}
}

// NextOrderID increments and persists the counter, returning the new value.
// The first id handed out is 1.
func (r *OrderRepository) NextOrderID() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	raw, ok, err := r.store.Get(KeyLastOrderID)
	if err != nil {
		return 0, fmt.Errorf("repositories: read %s: %w", KeyLastOrderID, err)
	}
	last := 0
	if ok && strings.TrimSpace(raw) != "" {
		last, err = strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrCorruptCounter, raw)
		}
	}
	next := last + 1
	if err := r.store.Put(KeyLastOrderID, strconv.Itoa(next)); err != nil {
		return 0, fmt.Errorf("repositories: write %s: %w", KeyLastOrderID, err)
	}
	return next, nil
}

// All returns every stored order, oldest first, with line items re-bound to
// the catalog.
func (r *OrderRepository) All() ([]models.Order, error) {
	r.mu.Lock()
	recs, err := r.load()
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}

	catalog, err := r.products.index()
	if err != nil {
		return nil, err
	}
	orders := make([]models.Order, len(recs))
	for i, rec := range recs {
		orders[i] = rec.toModel(catalog)
	}
	return orders, nil
}

// Append adds order to the end of the stored list.
func (r *OrderRepository) Append(order models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs, err := r.load()
	if err != nil {
		return err
	}
	return writeJSON(r.store, KeyOrders, append(recs, toOrderRecord(order)))
}

// SaveAll overwrites the stored list.
func (r *OrderRepository) SaveAll(orders []models.Order) error {
	recs := make([]orderRecord, len(orders))
	for i, o := range orders {
		recs[i] = toOrderRecord(o)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSON(r.store, KeyOrders, recs)
}

// SetStatus changes the status of order id. It reports false when no such
// order exists.
func (r *OrderRepository) SetStatus(id int, status string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs, err := r.load()
	if err != nil {
		return false, err
	}
	for i := range recs {
		if recs[i].ID == id {
			recs[i].Status = status
			return true, writeJSON(r.store, KeyOrders, recs)
		}
	}
	return false, nil
}

func (r *OrderRepository) load() ([]orderRecord, error) {
	var recs []orderRecord
	ok, err := readJSON(r.store, KeyOrders, &recs)
	if err != nil {
		return nil, err
	}
	if !ok || recs == nil {
		recs = []orderRecord{}
	}
	return recs, nil
}
