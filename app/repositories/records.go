package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

// lineItemRecord is the stored shape of a cart or order line. The product
// is kept as a snapshot so it can still be shown if the catalog drops it.
type lineItemRecord struct {
	ProductID int            `json:"productId"`
	Product   models.Product `json:"product"`
	Quantity  int            `json:"quantity"`
}

type orderRecord struct {
	ID        int              `json:"id"`
	UserEmail string           `json:"userEmail"`
	Items     []lineItemRecord `json:"items"`
	Total     float64          `json:"total"`
	Timestamp time.Time        `json:"timestamp"`
	FullName  string           `json:"fullName"`
	Address   string           `json:"address"`
	Phone     string           `json:"phone"`
	Email     string           `json:"email"`
	Status    string           `json:"status"`
}

type userRecord struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Password string `json:"password"`
}

func toLineRecords(items []models.LineItem) []lineItemRecord {
	out := make([]lineItemRecord, len(items))
	for i, it := range items {
		out[i] = lineItemRecord{ProductID: it.Product.ID, Product: it.Product, Quantity: it.Quantity}
	}
	return out
}

// rebind resolves each line against catalog by product id, falling back to
// the stored snapshot.
func rebind(lines []lineItemRecord, catalog map[int]models.Product) []models.LineItem {
	out := make([]models.LineItem, len(lines))
	for i, l := range lines {
		id := l.ProductID
		if id == 0 {
			id = l.Product.ID
		}
		p, ok := catalog[id]
		if !ok {
			logger.Debug("line item kept as stored snapshot", "product_id", id)
			p = l.Product
		}
		out[i] = models.LineItem{Product: p, Quantity: l.Quantity}
	}
	return out
}

func toOrderRecord(o models.Order) orderRecord {
	return orderRecord{
		ID:        o.ID,
		UserEmail: o.UserEmail,
		Items:     toLineRecords(o.Items),
		Total:     o.Total,
		Timestamp: o.Timestamp,
		FullName:  o.FullName,
		Address:   o.Address,
		Phone:     o.Phone,
		Email:     o.Email,
		Status:    o.Status,
	}
}

func (r orderRecord) toModel(catalog map[int]models.Product) models.Order {
	status := r.Status
	if status == "" {
		status = models.StatusDelivered
	}
	return models.Order{
		ID:        r.ID,
		UserEmail: r.UserEmail,
		Items:     rebind(r.Items, catalog),
		Total:     r.Total,
		Timestamp: r.Timestamp,
		FullName:  r.FullName,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
		Status:    status,
	}
}

// readJSON decodes the record at key into out. A missing record leaves out
// untouched and reports false. A record that does not decode is logged and
// also reported as false, so callers fall back to an empty value.
func readJSON(store recordstore.Store, key string, out any) (bool, error) {
	raw, ok, err := store.Get(key)
	if err != nil {
		return false, fmt.Errorf("repositories: read %s: %w", key, err)
	}
	if !ok || raw == "" {
		return false, nil
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		logger.Warn("malformed record, using empty value", "key", key, "error", err)
		return false, nil
	}
	return true, nil
}

func writeJSON(store recordstore.Store, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("repositories: encode %s: %w", key, err)
	}
	if err := store.Put(key, string(b)); err != nil {
		return fmt.Errorf("repositories: write %s: %w", key, err)
	}
	return nil
}
