// Package services holds the storefront's business operations. Adapters call
// services; services persist through app/repositories.
package services

// Events fired through the kernel's dispatcher.
const (
	EventUserRegistered = "user.registered"
	EventUserLoggedIn   = "user.logged_in"
	EventOrderCreated   = "order.created"
)
