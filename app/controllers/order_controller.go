package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/export"
	"github.com/shashiranjanraj/storefront/pkg/response"
)

type OrderController struct {
	orders *services.OrderService
	auth   *services.AuthService
}

func NewOrderController(orders *services.OrderService, auth *services.AuthService) *OrderController {
	return &OrderController{orders: orders, auth: auth}
}

type orderView struct {
	models.Order
	FormattedID  string `json:"formattedId"`
	DisplayDate  string `json:"displayDate"`
	DisplayTotal string `json:"displayTotal"`
}

func viewOf(o models.Order) orderView {
	return orderView{Order: o, FormattedID: o.FormattedID(), DisplayDate: o.DisplayDate(), DisplayTotal: o.DisplayTotal()}
}

func (c *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	var form services.CheckoutForm
	if !decode(w, r, &form) {
		return
	}

	order, ok, err := c.orders.Checkout(form)
	if err != nil {
		fail(w, r, "checkout", err)
		return
	}
	if !ok {
		response.BadRequest(w, "Cart is empty")
		return
	}
	response.Created(w, viewOf(order))
}

// Index lists the current user's orders, oldest first. ?recent=true limits
// the list to the last six months.
func (c *OrderController) Index(w http.ResponseWriter, r *http.Request) {
	user, ok := c.currentUser(w, r)
	if !ok {
		return
	}

	var (
		orders []models.Order
		err    error
	)
	if r.URL.Query().Get("recent") == "true" {
		orders, err = c.orders.UserOrdersLast6Months(user.Email)
	} else {
		orders, err = c.orders.UserOrders(user.Email)
	}
	if err != nil {
		fail(w, r, "list orders", err)
		return
	}

	response.Success(w, collection.Map(orders, viewOf))
}

func (c *OrderController) Show(w http.ResponseWriter, r *http.Request) {
	order, ok := c.ownedOrder(w, r)
	if !ok {
		return
	}
	response.Success(w, viewOf(order))
}

func (c *OrderController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	order, ok := c.ownedOrder(w, r)
	if !ok {
		return
	}
	var form services.StatusForm
	if !decode(w, r, &form) {
		return
	}
	if _, err := c.orders.UpdateStatus(order.ID, form.Status); err != nil {
		fail(w, r, "update order status", err)
		return
	}
	order.Status = form.Status
	response.Success(w, viewOf(order))
}

// Export streams the current user's order history as an xlsx workbook.
func (c *OrderController) Export(w http.ResponseWriter, r *http.Request) {
	user, ok := c.currentUser(w, r)
	if !ok {
		return
	}
	orders, err := c.orders.UserOrders(user.Email)
	if err != nil {
		fail(w, r, "export orders", err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename=orders.xlsx")
	if err := export.OrdersToXLSX(w, orders); err != nil {
		fail(w, r, "export orders", err)
	}
}

func (c *OrderController) currentUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	user, ok, err := c.auth.CurrentUser()
	if err != nil {
		fail(w, r, "current user", err)
		return models.User{}, false
	}
	if !ok {
		response.Unauthorized(w)
		return models.User{}, false
	}
	return user, true
}

// ownedOrder loads {id} and answers 404 unless it belongs to the current user.
func (c *OrderController) ownedOrder(w http.ResponseWriter, r *http.Request) (models.Order, bool) {
	user, ok := c.currentUser(w, r)
	if !ok {
		return models.Order{}, false
	}
	id, ok := idParam(w, r, "id")
	if !ok {
		return models.Order{}, false
	}
	order, found, err := c.orders.OrderByID(id)
	if err != nil {
		fail(w, r, "show order", err)
		return models.Order{}, false
	}
	if !found || order.UserEmail != user.Email {
		response.NotFound(w)
		return models.Order{}, false
	}
	return order, true
}
