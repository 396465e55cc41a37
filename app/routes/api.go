// Package routes mounts the storefront JSON API.
package routes

import (
	"github.com/shashiranjanraj/storefront/app/controllers"
	"github.com/shashiranjanraj/storefront/pkg/middleware"
	"github.com/shashiranjanraj/storefront/pkg/router"
)

// Controllers groups the handlers RegisterAPI mounts.
type Controllers struct {
	Catalog *controllers.CatalogController
	Auth    *controllers.AuthController
	Cart    *controllers.CartController
	Orders  *controllers.OrderController
}

func RegisterAPI(r *router.Router, c Controllers, sessions middleware.SessionChecker) {
	api := r.Group("/api")

	api.Get("/products", "products.index", c.Catalog.Index)
	api.Get("/products/search", "products.search", c.Catalog.Search)
	api.Get("/products/{id}", "products.show", c.Catalog.Show)

	api.Post("/register", "auth.register", c.Auth.Register)
	api.Post("/login", "auth.login", c.Auth.Login)
	api.Post("/logout", "auth.logout", c.Auth.Logout)
	api.Get("/me", "auth.me", c.Auth.Me)

	api.Get("/cart", "cart.show", c.Cart.Show)
	api.Post("/cart/items", "cart.add", c.Cart.Add)
	api.Put("/cart/items/{id}", "cart.update", c.Cart.Update)
	api.Delete("/cart/items/{id}", "cart.remove", c.Cart.Remove)
	api.Delete("/cart", "cart.clear", c.Cart.Clear)

	api.Post("/checkout", "orders.checkout", c.Orders.Checkout)

	account := api.Group("/orders", middleware.RequireSession(sessions))
	account.Get("/", "orders.index", c.Orders.Index)
	account.Get("/export", "orders.export", c.Orders.Export)
	account.Get("/{id}", "orders.show", c.Orders.Show)
	account.Put("/{id}/status", "orders.status", c.Orders.UpdateStatus)
}
