package services

import (
	"sync"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/pkg/clock"
	"github.com/shashiranjanraj/storefront/pkg/collection"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

// OrderService creates orders and answers order-history queries.
type OrderService struct {
	orders *repositories.OrderRepository
	cart   *CartService
	auth   *AuthService
	clock  clock.Clock
	events *event.Dispatcher

	checkoutMu sync.Mutex
}

func NewOrderService(
	orders *repositories.OrderRepository,
	cart *CartService,
	auth *AuthService,
	clk clock.Clock,
	events *event.Dispatcher,
) *OrderService {
	if clk == nil {
		clk = clock.System{}
	}
	return &OrderService{orders: orders, cart: cart, auth: auth, clock: clk, events: events}
}

// CreateOrder allocates the next id and stores a snapshot of items. The
// total is fixed here and never recomputed.
func (s *OrderService) CreateOrder(userEmail string, items []models.LineItem, fullName, address, phone, email string) (models.Order, error) {
	id, err := s.orders.NextOrderID()
	if err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:        id,
		UserEmail: userEmail,
		Items:     models.CloneItems(items),
		Total:     models.SumTotal(items),
		Timestamp: s.clock.Now(),
		FullName:  fullName,
		Address:   address,
		Phone:     phone,
		Email:     email,
		Status:    models.StatusDelivered,
	}
	if err := s.orders.Append(order); err != nil {
		return models.Order{}, err
	}

	logger.Info("order created", "order_id", order.FormattedID(), "email", userEmail, "total", order.DisplayTotal())
	s.events.Fire(EventOrderCreated, order.Clone())
	return order, nil
}

// Checkout turns the current cart into an order and takes the ordered lines
// out of the cart. It reports false when the cart is empty. The order belongs
// to the logged-in user, or to the contact email when nobody is logged in.
// Checkouts run one at a time so a cart is never ordered twice.
func (s *OrderService) Checkout(form CheckoutForm) (models.Order, bool, error) {
	s.checkoutMu.Lock()
	defer s.checkoutMu.Unlock()

	items := s.cart.Items()
	if len(items) == 0 {
		return models.Order{}, false, nil
	}

	owner := form.Email
	if s.auth != nil {
		user, ok, err := s.auth.CurrentUser()
		if err != nil {
			return models.Order{}, false, err
		}
		if ok {
			owner = user.Email
		}
	}

	order, err := s.CreateOrder(owner, items, form.FullName, form.Address, form.Phone, form.Email)
	if err != nil {
		return models.Order{}, false, err
	}
	if err := s.cart.Settle(order.Items); err != nil {
		return order, true, err
	}
	return order, true, nil
}

// UserOrders returns email's orders, oldest first.
func (s *OrderService) UserOrders(email string) ([]models.Order, error) {
	all, err := s.orders.All()
	if err != nil {
		return nil, err
	}
	return collection.Filter(all, func(o models.Order) bool { return o.UserEmail == email }), nil
}

// UserOrdersLast6Months returns email's orders placed on or after the same
// instant six calendar months ago.
func (s *OrderService) UserOrdersLast6Months(email string) ([]models.Order, error) {
	mine, err := s.UserOrders(email)
	if err != nil {
		return nil, err
	}
	cutoff := clock.AddMonths(s.clock.Now(), -6)
	return collection.Filter(mine, func(o models.Order) bool { return !o.Timestamp.Before(cutoff) }), nil
}

func (s *OrderService) OrderByID(id int) (models.Order, bool, error) {
	all, err := s.orders.All()
	if err != nil {
		return models.Order{}, false, err
	}
	o, ok := collection.First(all, func(o models.Order) bool { return o.ID == id })
	return o, ok, nil
}

// UpdateStatus changes the status of order id. It reports false for an
// unknown id.
func (s *OrderService) UpdateStatus(id int, status string) (bool, error) {
	ok, err := s.orders.SetStatus(id, status)
	if err != nil || !ok {
		return false, err
	}
	logger.Info("order status changed", "order_id", id, "status", status)
	return true, nil
}
