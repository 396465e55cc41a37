package repositories_test

import (
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/database/seeders"
	"github.com/shashiranjanraj/storefront/pkg/logger"
	"github.com/shashiranjanraj/storefront/pkg/recordstore"
)

var errBroken = errors.New("disk on fire")

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Get(string) (string, bool, error) { return "", false, errBroken }
func (brokenStore) Put(string, string) error         { return errBroken }
func (brokenStore) Delete(string) error              { return errBroken }
func (brokenStore) Close() error                     { return nil }

func seeded(t *testing.T) (*recordstore.Memory, *repositories.ProductRepository) {
	t.Helper()
	store := recordstore.NewMemory()
	products := repositories.NewProductRepository(store)
	_, err := products.SeedIfEmpty()
	require.NoError(t, err)
	return store, products
}

// ── Products ─────────────────────────────────────────────────────────────────

func TestSeedIfEmptyIsIdempotent(t *testing.T) {
	store := recordstore.NewMemory()
	repo := repositories.NewProductRepository(store)

	wrote, err := repo.SeedIfEmpty()
	require.NoError(t, err)
	assert.True(t, wrote)

	first, _, _ := store.Get(repositories.KeyProducts)

	wrote, err = repo.SeedIfEmpty()
	require.NoError(t, err)
	assert.False(t, wrote)

	second, _, _ := store.Get(repositories.KeyProducts)
	assert.Equal(t, first, second)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, seeders.Products(), all)
}

func TestSeedIfEmptyKeepsExistingCatalog(t *testing.T) {
	repo := repositories.NewProductRepository(recordstore.NewMemory())
	custom := []models.Product{{ID: 42, Name: "Lamp", Price: 10}}
	require.NoError(t, repo.SaveAll(custom))

	wrote, err := repo.SeedIfEmpty()
	require.NoError(t, err)
	assert.False(t, wrote)

	all, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, custom, all)
}

func TestSeedIfEmptyReseedsEmptyList(t *testing.T) {
	repo := repositories.NewProductRepository(recordstore.NewMemory())
	require.NoError(t, repo.SaveAll(nil))

	wrote, err := repo.SeedIfEmpty()
	require.NoError(t, err)
	assert.True(t, wrote)
}

func TestProductsAllWithoutRecord(t *testing.T) {
	repo := repositories.NewProductRepository(recordstore.NewMemory())
	all, err := repo.All()
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)
}

func TestProductsMalformedRecordIsEmpty(t *testing.T) {
	store := recordstore.NewMemory()
	require.NoError(t, store.Put(repositories.KeyProducts, "{not json"))

	all, err := repositories.NewProductRepository(store).All()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProductByID(t *testing.T) {
	_, repo := seeded(t)

	p, ok, err := repo.ByID(4)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Phone Case", p.Name)

	_, ok, err = repo.ByID(99)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreErrorsPropagate(t *testing.T) {
	products := repositories.NewProductRepository(brokenStore{})
	_, err := products.SeedIfEmpty()
	assert.ErrorIs(t, err, errBroken)

	_, err = repositories.NewUserRepository(brokenStore{}).Create(models.User{Email: "a@b.c"})
	assert.ErrorIs(t, err, errBroken)

	_, err = repositories.NewOrderRepository(brokenStore{}, products).NextOrderID()
	assert.ErrorIs(t, err, errBroken)

	assert.ErrorIs(t, repositories.NewCartRepository(brokenStore{}, products).Clear(), errBroken)
}

// ── Users ────────────────────────────────────────────────────────────────────

func TestUserCreateRejectsDuplicate(t *testing.T) {
	repo := repositories.NewUserRepository(recordstore.NewMemory())

	ok, err := repo.Create(models.User{Email: "jane@example.com", FullName: "Jane", Password: "first1"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.Create(models.User{Email: "jane@example.com", FullName: "Other", Password: "second"})
	require.NoError(t, err)
	assert.False(t, ok)

	u, found, err := repo.FindByEmail("jane@example.com")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Jane", u.FullName)
	assert.Equal(t, "first1", u.Password)
}

func TestUserEmailMatchIsExact(t *testing.T) {
	repo := repositories.NewUserRepository(recordstore.NewMemory())
	_, err := repo.Create(models.User{Email: "jane@example.com", Password: "x"})
	require.NoError(t, err)

	_, found, err := repo.FindByEmail("Jane@Example.com")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSessionLifecycle(t *testing.T) {
	repo := repositories.NewUserRepository(recordstore.NewMemory())

	_, ok, err := repo.SessionEmail()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.SetSession("ghost@example.com"))

	// stale pointer: set, but no such user
	_, ok, err = repo.SessionUser()
	require.NoError(t, err)
	assert.False(t, ok)
	email, ok, err := repo.SessionEmail()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "ghost@example.com", email)

	require.NoError(t, repo.ClearSession())
	require.NoError(t, repo.ClearSession())
	_, ok, err = repo.SessionEmail()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUsersMalformedRecordIsEmpty(t *testing.T) {
	store := recordstore.NewMemory()
	require.NoError(t, store.Put(repositories.KeyUsers, "[1,2,3]"))
	repo := repositories.NewUserRepository(store)

	_, found, err := repo.FindByEmail("x@example.com")
	require.NoError(t, err)
	assert.False(t, found)

	ok, err := repo.Create(models.User{Email: "x@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, ok)
}

// ── Cart ─────────────────────────────────────────────────────────────────────

func TestCartSaveLoadClear(t *testing.T) {
	store, products := seeded(t)
	repo := repositories.NewCartRepository(store, products)

	items, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, items)

	p, _, _ := products.ByID(1)
	require.NoError(t, repo.Save([]models.LineItem{{Product: p, Quantity: 2}}))

	items, err = repo.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, p, items[0].Product)
	assert.Equal(t, 2, items[0].Quantity)

	require.NoError(t, repo.Clear())
	_, exists, _ := store.Get(repositories.KeyCart)
	assert.False(t, exists)
}

func TestCartLoadRebindsToCurrentCatalog(t *testing.T) {
	store, products := seeded(t)
	repo := repositories.NewCartRepository(store, products)

	p, _, _ := products.ByID(1)
	require.NoError(t, repo.Save([]models.LineItem{{Product: p, Quantity: 1}}))

	catalog, _ := products.All()
	catalog[0].Price = 99.00
	require.NoError(t, products.SaveAll(catalog))

	items, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 99.00, items[0].Product.Price)
}

func TestCartLoadKeepsSnapshotForUnknownProduct(t *testing.T) {
	store, products := seeded(t)
	repo := repositories.NewCartRepository(store, products)

	gone := models.Product{ID: 77, Name: "Discontinued", Price: 5}
	require.NoError(t, repo.Save([]models.LineItem{{Product: gone, Quantity: 3}}))

	var logs bytes.Buffer
	logger.SetOutput(&logs)
	t.Cleanup(func() { logger.SetOutput(os.Stdout) })

	items, err := repo.Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, gone, items[0].Product)
	assert.Contains(t, logs.String(), "line item kept as stored snapshot")
	assert.Contains(t, logs.String(), "product_id=77")
}

func TestCartLoadAcceptsSnapshotWithoutProductID(t *testing.T) {
	store, products := seeded(t)
	require.NoError(t, store.Put(repositories.KeyCart,
		`[{"product":{"id":2,"name":"old name","price":1},"quantity":1}]`))

	items, err := repositories.NewCartRepository(store, products).Load()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Smart Watch", items[0].Product.Name)
}

func TestCartMalformedRecordIsEmpty(t *testing.T) {
	store, products := seeded(t)
	require.NoError(t, store.Put(repositories.KeyCart, `{"cart":true}`))

	items, err := repositories.NewCartRepository(store, products).Load()
	require.NoError(t, err)
	assert.Empty(t, items)
}

// ── Orders ───────────────────────────────────────────────────────────────────

func TestNextOrderIDIsMonotonic(t *testing.T) {
	store, products := seeded(t)
	repo := repositories.NewOrderRepository(store, products)

	for want := 1; want <= 3; want++ {
		id, err := repo.NextOrderID()
		require.NoError(t, err)
		assert.Equal(t, want, id)
	}
	raw, _, _ := store.Get(repositories.KeyLastOrderID)
	assert.Equal(t, "3", raw)
}

func TestNextOrderIDRejectsCorruptCounter(t *testing.T) {
	store, products := seeded(t)
	require.NoError(t, store.Put(repositories.KeyLastOrderID, "seven"))

	_, err := repositories.NewOrderRepository(store, products).NextOrderID()
	assert.ErrorIs(t, err, repositories.ErrCorruptCounter)
}

func TestOrderAppendAllAndRebind(t *testing.T) {
	store, products := seeded(t)
	repo := repositories.NewOrderRepository(store, products)

	p, _, _ := products.ByID(4)
	ts := time.Date(2026, 10, 18, 9, 30, 0, 0, time.UTC)
	require.NoError(t, repo.Append(models.Order{
		ID: 1, UserEmail: "jane@example.com", Total: 59.97, Timestamp: ts,
		Items: []models.LineItem{{Product: p, Quantity: 3}}, Status: models.StatusDelivered,
	}))
	require.NoError(t, repo.Append(models.Order{ID: 2, UserEmail: "bob@example.com", Timestamp: ts}))

	catalog, _ := products.All()
	catalog[3].Price = 25.00
	require.NoError(t, products.SaveAll(catalog))

	orders, err := repo.All()
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 1, orders[0].ID)
	assert.Equal(t, 2, orders[1].ID)
	assert.True(t, ts.Equal(orders[0].Timestamp))
	assert.Equal(t, 25.00, orders[0].Items[0].Product.Price)
	assert.Equal(t, 59.97, orders[0].Total, "stored total is never recomputed")
	assert.Equal(t, models.StatusDelivered, orders[1].Status, "missing status reads as Delivered")
}

func TestOrderSetStatus(t *testing.T) {
	store, products := seeded(t)
	repo := repositories.NewOrderRepository(store, products)
	require.NoError(t, repo.Append(models.Order{ID: 1, Status: models.StatusPending}))

	ok, err := repo.SetStatus(1, models.StatusShipped)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.SetStatus(9, models.StatusShipped)
	require.NoError(t, err)
	assert.False(t, ok)

	orders, err := repo.All()
	require.NoError(t, err)
	assert.Equal(t, models.StatusShipped, orders[0].Status)
}

func TestOrdersMalformedRecordIsEmpty(t *testing.T) {
	store, products := seeded(t)
	require.NoError(t, store.Put(repositories.KeyOrders, "null-ish"))

	orders, err := repositories.NewOrderRepository(store, products).All()
	require.NoError(t, err)
	assert.Empty(t, orders)
}
