package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

type CartController struct {
	cart    *services.CartService
	catalog *services.CatalogService
}

func NewCartController(cart *services.CartService, catalog *services.CatalogService) *CartController {
	return &CartController{cart: cart, catalog: catalog}
}

type cartView struct {
	Items         []models.LineItem `json:"items"`
	Total         float64           `json:"total"`
	DisplayTotal  string            `json:"displayTotal"`
	TotalQuantity int               `json:"totalQuantity"`
}

type addItemRequest struct {
	ProductID int `json:"productId" validate:"required"`
	Quantity  int `json:"quantity"  validate:"min=1,max=99"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

func (c *CartController) Show(w http.ResponseWriter, r *http.Request) {
	snap := c.cart.Snapshot()
	response.Success(w, cartView{
		Items:         snap.Items,
		Total:         snap.Total,
		DisplayTotal:  models.FormatMoney(snap.Total),
		TotalQuantity: snap.TotalQuantity,
	})
}

// Add puts a catalog product into the cart. Quantity defaults to 1.
func (c *CartController) Add(w http.ResponseWriter, r *http.Request) {
	req := addItemRequest{Quantity: 1}
	if !decode(w, r, &req) {
		return
	}
	p, found, err := c.catalog.ByID(req.ProductID)
	if err != nil {
		fail(w, r, "cart add lookup", err)
		return
	}
	if !found {
		response.NotFound(w)
		return
	}
	if err := c.cart.AddToCart(p, req.Quantity); err != nil {
		fail(w, r, "cart add", err)
		return
	}
	c.Show(w, r)
}

// Update sets an absolute quantity; zero or less removes the line.
func (c *CartController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	var req quantityRequest
	if !decode(w, r, &req) {
		return
	}
	if err := c.cart.UpdateQuantity(id, req.Quantity); err != nil {
		fail(w, r, "cart update", err)
		return
	}
	c.Show(w, r)
}

func (c *CartController) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	if err := c.cart.RemoveFromCart(id); err != nil {
		fail(w, r, "cart remove", err)
		return
	}
	c.Show(w, r)
}

func (c *CartController) Clear(w http.ResponseWriter, r *http.Request) {
	if err := c.cart.Clear(); err != nil {
		fail(w, r, "cart clear", err)
		return
	}
	c.Show(w, r)
}
