// Package repositories persists storefront records in a recordstore.Store.
//
// Every record family sits behind its own mutex: products; users and the
// session pointer; the cart; orders and the order-id counter. Cart and order
// line items are re-bound to the live catalog each time they are loaded.
package repositories

// Record store keys.
const (
	KeyUsers       = "users"
	KeyCurrentUser = "current_user"
	KeyCart        = "cart"
	KeyOrders      = "orders"
	KeyProducts    = "products"
	KeyLastOrderID = "last_order_id"
)
