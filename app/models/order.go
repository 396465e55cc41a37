package models

import (
	"fmt"
	"time"
)

// Order statuses. The set is open-ended; Delivered is the default.
const (
	StatusPending   = "Pending"
	StatusShipped   = "Shipped"
	StatusDelivered = "Delivered"
)

// Order is a completed purchase. Items and Total are a snapshot taken when
// the order was created; only Status changes afterwards.
type Order struct {
	ID        int        `json:"id"`
	UserEmail string     `json:"userEmail"`
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	Timestamp time.Time  `json:"timestamp"`
	FullName  string     `json:"fullName"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	Email     string     `json:"email"`
	Status    string     `json:"status"`
}

// FormattedID renders the customer-facing order number.
// The year segment is a fixed literal and does not follow Timestamp.
func (o Order) FormattedID() string {
	return fmt.Sprintf("ORD-2025-%04d", o.ID)
}

// DisplayDate renders Timestamp as "Sunday, October 18, 2026".
func (o Order) DisplayDate() string {
	return o.Timestamp.Format("Monday, January 02, 2006")
}

// DisplayTotal formats Total as "$59.97".
func (o Order) DisplayTotal() string { return FormatMoney(o.Total) }

// Clone returns a copy of o that shares no line-item storage.
func (o Order) Clone() Order {
	o.Items = CloneItems(o.Items)
	return o
}
