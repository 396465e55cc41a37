package kernel_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/internal/kernel"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/clock"
	"github.com/shashiranjanraj/storefront/pkg/export"
	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

type envelope struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  map[string]string
}

type api struct {
	t *testing.T
	h http.Handler
}

func newAPI(t *testing.T) (*api, *kernel.Kernel, *recordstore.Memory) {
	t.Helper()
	store := recordstore.NewMemory()
	k, err := kernel.New(kernel.Options{
		Store: store,
		Clock: clock.Fixed(time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = k.Close() })

	h, err := k.HTTPHandler()
	require.NoError(t, err)
	return &api{t: t, h: h}, k, store
}

func (a *api) do(method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	rec := httptest.NewRecorder()
	a.h.ServeHTTP(rec, httptest.NewRequest(method, path, &buf))

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(a.t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

func TestNewSeedsCatalog(t *testing.T) {
	_, k, store := newAPI(t)

	products, err := k.Catalog.All()
	require.NoError(t, err)
	assert.Len(t, products, 6)

	_, ok, _ := store.Get(repositories.KeyProducts)
	assert.True(t, ok)
}

func TestNewRequiresStore(t *testing.T) {
	_, err := kernel.New(kernel.Options{})
	assert.Error(t, err)
}

func TestShoppingFlow(t *testing.T) {
	a, k, _ := newAPI(t)

	rec, env := a.do(http.MethodPost, "/api/register", map[string]string{
		"fullName": "Jane Doe", "email": "jane@example.com", "password": "secret", "confirmPassword": "secret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)

	rec, _ = a.do(http.MethodPost, "/api/register", map[string]string{
		"fullName": "Jane Again", "email": "jane@example.com", "password": "other1", "confirmPassword": "other1",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec, _ = a.do(http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec, _ = a.do(http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com", "password": "wrong!"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec, _ = a.do(http.MethodPost, "/api/login", map[string]string{"email": "jane@example.com", "password": "secret"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec, _ = a.do(http.MethodPost, "/api/cart/items", map[string]int{"productId": 1, "quantity": 2})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, env = a.do(http.MethodPost, "/api/cart/items", map[string]int{"productId": 3})
	require.Equal(t, http.StatusOK, rec.Code)

	var cart struct {
		Total         float64 `json:"total"`
		DisplayTotal  string  `json:"displayTotal"`
		TotalQuantity int     `json:"totalQuantity"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 309.97, cart.Total)
	assert.Equal(t, "$309.97", cart.DisplayTotal)
	assert.Equal(t, 3, cart.TotalQuantity)

	rec, env = a.do(http.MethodPost, "/api/checkout", map[string]any{
		"fullName": "Jane Doe", "address": "1 Main St", "phone": "555-0100", "email": "jane@example.com",
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, env.Errors, "privacyConsent")

	rec, env = a.do(http.MethodPost, "/api/checkout", map[string]any{
		"fullName": "Jane Doe", "address": "1 Main St", "phone": "555-0100", "email": "jane@example.com", "privacyConsent": true,
	})
	require.Equal(t, http.StatusCreated, rec.Code, env.Message)

	var order struct {
		ID          int     `json:"id"`
		FormattedID string  `json:"formattedId"`
		UserEmail   string  `json:"userEmail"`
		Total       float64 `json:"total"`
		Status      string  `json:"status"`
		DisplayDate string  `json:"displayDate"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &order))
	assert.Equal(t, "ORD-2025-0001", order.FormattedID)
	assert.Equal(t, "jane@example.com", order.UserEmail)
	assert.Equal(t, 309.97, order.Total)
	assert.Equal(t, "Delivered", order.Status)
	assert.Equal(t, "Sunday, October 18, 2026", order.DisplayDate)
	assert.Empty(t, k.Cart.Items())

	rec, _ = a.do(http.MethodPost, "/api/checkout", map[string]any{
		"fullName": "Jane Doe", "address": "1 Main St", "phone": "555-0100", "email": "jane@example.com", "privacyConsent": true,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code, "cart is empty now")

	rec, env = a.do(http.MethodGet, "/api/orders?recent=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, "ORD-2025-0001", list[0]["formattedId"])
	assert.Equal(t, "$309.97", list[0]["displayTotal"])

	rec, _ = a.do(http.MethodPut, "/api/orders/1/status", map[string]string{"status": "Shipped"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = a.do(http.MethodPut, "/api/orders/1/status", map[string]string{"status": "Lost"})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	rec, _ = a.do(http.MethodGet, "/api/orders/2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = a.do(http.MethodGet, "/api/orders/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, export.ContentType, rec.Header().Get("Content-Type"))
	assert.NotZero(t, rec.Body.Len())

	rec, _ = a.do(http.MethodPost, "/api/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	rec, _ = a.do(http.MethodGet, "/api/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCartEndpoints(t *testing.T) {
	a, _, _ := newAPI(t)

	rec, _ := a.do(http.MethodPost, "/api/cart/items", map[string]int{"productId": 99})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = a.do(http.MethodPost, "/api/cart/items", map[string]int{"productId": 2, "quantity": 0})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	_, _ = a.do(http.MethodPost, "/api/cart/items", map[string]int{"productId": 2})
	rec, env := a.do(http.MethodPut, "/api/cart/items/2", map[string]int{"quantity": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	var cart struct {
		TotalQuantity int `json:"totalQuantity"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Equal(t, 5, cart.TotalQuantity)

	rec, env = a.do(http.MethodDelete, "/api/cart/items/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(env.Data, &cart))
	assert.Zero(t, cart.TotalQuantity)

	rec, _ = a.do(http.MethodPut, "/api/cart/items/abc", map[string]int{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	a, _, _ := newAPI(t)

	rec, env := a.do(http.MethodGet, "/api/products/search?q=case", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hits []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &hits))
	require.Len(t, hits, 1)
	assert.Equal(t, "Phone Case", hits[0]["name"])

	rec, env = a.do(http.MethodGet, "/api/products?page=2&perPage=4", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var page struct {
		Items      []map[string]any `json:"items"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 6, page.Pagination.Total)

	rec, _ = a.do(http.MethodGet, "/api/products/42", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGraphQLAndMetrics(t *testing.T) {
	a, _, _ := newAPI(t)

	rec, _ := a.do(http.MethodPost, "/graphql", map[string]string{"query": `{ product(id: 2) { name } }`})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Smart Watch")

	rec, _ = a.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "storefront_store_operations_total")
}

func TestRouteNames(t *testing.T) {
	_, k, _ := newAPI(t)
	r, err := k.Router()
	require.NoError(t, err)

	path, ok := r.Path("orders.show")
	require.True(t, ok)
	assert.Equal(t, "/api/orders/{id}", path)
}

type recordingForwarder struct {
	mu     sync.Mutex
	events []string
	closed bool
}

func (f *recordingForwarder) Forward(name string) event.Handler {
	return func(any) {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.events = append(f.events, name)
	}
}

func (f *recordingForwarder) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestPublisherReceivesEventsBeforeClose(t *testing.T) {
	fwd := &recordingForwarder{}
	k, err := kernel.New(kernel.Options{Store: recordstore.NewMemory(), Publisher: fwd})
	require.NoError(t, err)

	ok, err := k.Auth.Register("a@x.com", "Alice", "secret1")
	require.NoError(t, err)
	require.True(t, ok)

	p, found, err := k.Catalog.ByID(1)
	require.NoError(t, err)
	require.True(t, found)
	_, err = k.Orders.CreateOrder("a@x.com", []models.LineItem{{Product: p, Quantity: 1}}, "Alice", "1 Main St", "555", "a@x.com")
	require.NoError(t, err)

	require.NoError(t, k.Close())

	fwd.mu.Lock()
	defer fwd.mu.Unlock()
	assert.ElementsMatch(t, []string{services.EventUserRegistered, services.EventOrderCreated}, fwd.events)
	assert.True(t, fwd.closed)
}
